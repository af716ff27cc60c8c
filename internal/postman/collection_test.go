package postman

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewURL(t *testing.T) {
	u := NewURL("https", "api.steampowered.com", []string{"ISteamApps", "GetAppList", "v2", ""})

	assert.Equal(t, "https://api.steampowered.com/ISteamApps/GetAppList/v2/", u.Raw)
	assert.Equal(t, []string{"api", "steampowered", "com"}, u.Host)
	assert.Equal(t, []string{"ISteamApps", "GetAppList", "v2", ""}, u.Path)
	assert.NotNil(t, u.Query)
	assert.Empty(t, u.Query)
}

func TestURL_SetQuery(t *testing.T) {
	u := NewURL("https", "api.steampowered.com", []string{"I", "M", "v1", ""})

	u.SetQuery([]Param{
		{Key: "appid", Value: ""},
		{Key: "filter", Value: "", Disabled: true},
	})

	assert.Len(t, u.Query, 2)
	assert.Equal(t, "https://api.steampowered.com/I/M/v1/?appid=", u.Raw)

	u.SetQuery([]Param{{Key: "input_json", Value: "{}"}})
	assert.Equal(t, "https://api.steampowered.com/I/M/v1/?input_json={}", u.Raw)
}

func TestCollectionID_Stable(t *testing.T) {
	a := CollectionID("https://api.steampowered.com")
	b := CollectionID("https://api.steampowered.com")
	c := CollectionID("https://partner.steam-api.com")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 36)
}

func TestCollection_JSONShape(t *testing.T) {
	c := Collection{
		Info: Info{Name: "n", Schema: "s"},
		Item: []Folder{{
			Name: "ISteamApps",
			Item: []Item{{
				Name: "GetAppList",
				Request: Request{
					Method: "GET",
					Header: []Header{},
					URL:    NewURL("https", "api.steampowered.com", []string{"ISteamApps", "GetAppList", "v2", ""}),
				},
			}},
		}},
	}

	raw, err := json.Marshal(c)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(raw, &generic))

	req := generic["item"].([]any)[0].(map[string]any)["item"].([]any)[0].(map[string]any)["request"].(map[string]any)
	_, hasBody := req["body"]
	assert.False(t, hasBody, "unset body must be omitted")
	assert.Equal(t, []any{}, req["url"].(map[string]any)["query"])
	assert.Equal(t, 1, c.CountItems())
	assert.NotNil(t, c.Folder("ISteamApps"))
	assert.Nil(t, c.Folder("missing"))
}
