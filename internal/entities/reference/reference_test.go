package reference_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SogeMoge/xwsbot/internal/entities/reference"
)

const fangFighterJSON = `{
	"name": "Fang Fighter",
	"xws": "fangfighter",
	"size": "Small",
	"faction": "Scum and Villainy",
	"stats": [
		{"arc": "Front Arc", "type": "attack", "value": 3},
		{"type": "agility", "value": 3},
		{"type": "hull", "value": 4}
	],
	"pilots": [
		{"name": "Old Teroch", "initiative": 5, "limited": 1, "cost": 60, "xws": "oldteroch",
		 "image": "https://example.test/oldteroch.png"}
	]
}`

func TestShipDecode(t *testing.T) {
	var ship reference.Ship
	require.NoError(t, json.Unmarshal([]byte(fangFighterJSON), &ship))

	assert.Equal(t, "fangfighter", ship.XWS)
	assert.Equal(t, reference.SizeSmall, ship.Size)

	agility, ok := ship.StatValue(reference.StatAgility)
	assert.True(t, ok)
	assert.Equal(t, 3, agility)

	_, ok = ship.StatValue("shields")
	assert.False(t, ok)

	require.Len(t, ship.Pilots, 1)
	pilot := ship.Pilots[0]
	assert.Equal(t, "oldteroch", pilot.XWS)
	require.NotNil(t, pilot.Initiative)
	assert.Equal(t, 5, *pilot.Initiative)
	cost, ok := pilot.Cost.Int()
	assert.True(t, ok)
	assert.Equal(t, 60, cost)
}

func TestUpgradeDecode(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		wantFixed bool
		variable  string
	}{
		{
			name:      "fixed cost",
			input:     `{"name": "Afterburners", "xws": "afterburners", "cost": {"value": 3}, "sides": [{"title": "Afterburners", "image": "a.png"}]}`,
			wantFixed: true,
		},
		{
			name:     "variable cost",
			input:    `{"name": "Hull Upgrade", "xws": "hullupgrade", "cost": {"variable": "agility", "values": {"0": 2, "1": 3, "2": 5, "3": 7}}}`,
			variable: reference.VariableAgility,
		},
		{
			name:  "no cost",
			input: `{"name": "Odd Card", "xws": "oddcard"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var upgrade reference.Upgrade
			require.NoError(t, json.Unmarshal([]byte(tc.input), &upgrade))
			assert.Equal(t, tc.wantFixed, upgrade.Cost.IsFixed())
			if tc.variable != "" {
				assert.Equal(t, tc.variable, upgrade.Cost.Variable)
				v, ok := upgrade.Cost.Values["3"].Int()
				assert.True(t, ok)
				assert.Equal(t, 7, v)
			}
		})
	}
}

func TestUpgradeImage(t *testing.T) {
	var nilUpgrade *reference.Upgrade
	assert.Empty(t, nilUpgrade.Image())
	assert.Empty(t, (&reference.Upgrade{}).Image())
	assert.Equal(t, "front.png", (&reference.Upgrade{Sides: []reference.Side{{Image: "front.png"}, {Image: "back.png"}}}).Image())
}

func TestPlaceholders(t *testing.T) {
	ship := reference.PlaceholderShip()
	assert.Equal(t, reference.UnknownShipXWS, ship.XWS)
	assert.Equal(t, reference.SizeUnknown, ship.Size)
	assert.NotNil(t, ship.Stats)
	assert.Empty(t, ship.Stats)

	upgrade := reference.PlaceholderUpgrade("mysterybox")
	assert.Equal(t, "Unknown(mysterybox)", upgrade.Name)
	assert.Nil(t, upgrade.Cost)
	assert.Empty(t, upgrade.Image())
}
