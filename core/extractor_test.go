package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSnapshot = `
<html><body>
<table id="objects">
<thead><tr><th>id</th><th>name</th><th>type</th><th>subtype</th><th>owner</th><th>x</th><th>y</th><th>z</th></tr></thead>
<tbody>
<tr><td>o1</td><td>Gold Mine</td><td>mine</td><td>6</td><td>-1</td><td>12</td><td>7</td><td>0</td></tr>
<tr><td>o2</td><td>Magic Well</td><td>magic_well</td><td>0</td><td>-1</td><td>3</td><td>4</td><td>1</td></tr>
</tbody>
</table>
<table id="heroes">
<thead><tr><th>id</th><th>name</th><th>owner</th><th>level</th><th>mana</th><th>mana_limit</th><th>x</th><th>y</th><th>z</th><th>army</th></tr></thead>
<tbody>
<tr><td>h1</td><td>Sir Roland</td><td>0</td><td>5</td><td>12</td><td>30</td><td>10</td><td>10</td><td>0</td><td>pikeman:40, archer:15</td></tr>
</tbody>
</table>
</body></html>
`

func TestExtractor_Snapshot(t *testing.T) {
	snapshot, err := Extractor.Snapshot(strings.NewReader(sampleSnapshot))
	require.NoError(t, err)

	require.Len(t, snapshot.Objects, 2)
	mine := snapshot.Objects[0]
	assert.Equal(t, "o1", mine.ID)
	assert.Equal(t, "Gold Mine", mine.Name)
	assert.Equal(t, "mine", mine.Type)
	assert.Equal(t, 6, mine.SubType)
	assert.Equal(t, -1, mine.Owner)
	assert.Equal(t, 12, mine.X)
	assert.Equal(t, 7, mine.Y)

	well := snapshot.Objects[1]
	assert.Equal(t, 1, well.Z)

	require.Len(t, snapshot.Heroes, 1)
	hero := snapshot.Heroes[0]
	assert.Equal(t, "h1", hero.ID)
	assert.Equal(t, "Sir Roland", hero.Name)
	assert.Equal(t, 5, hero.Level)
	assert.Equal(t, 30, hero.ManaLimit)
	assert.Equal(t, "pikeman:40, archer:15", hero.Army)
}

func TestExtractor_Snapshot_BadCell(t *testing.T) {
	bad := strings.Replace(sampleSnapshot, "<td>6</td>", "<td>six</td>", 1)
	_, err := Extractor.Snapshot(strings.NewReader(bad))
	assert.Error(t, err)
}

func TestExtractor_Snapshot_Empty(t *testing.T) {
	snapshot, err := Extractor.Snapshot(strings.NewReader("<html><body></body></html>"))
	require.NoError(t, err)
	assert.Empty(t, snapshot.Objects)
	assert.Empty(t, snapshot.Heroes)
}

func TestParseArmy(t *testing.T) {
	army, err := ParseArmy("pikeman:40, archer:15")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"pikeman": 40, "archer": 15}, army)

	army, err = ParseArmy("")
	require.NoError(t, err)
	assert.Empty(t, army)

	_, err = ParseArmy("pikeman")
	assert.Error(t, err)

	_, err = ParseArmy("pikeman:lots")
	assert.Error(t, err)
}
