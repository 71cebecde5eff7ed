package foxyproxy

import (
	"bytes"
	"encoding/json"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestRuleJSON(t *testing.T) {
	rule := NewRule("test", WildcardPattern("*://*.csdn.com/"), true, true)

	data, err := json.Marshal(rule)
	require.NoError(t, err)
	require.JSONEq(t, `{"title":"test","type":"wildcard","pattern":"*://*.csdn.com/","active":true,"include":"include"}`, string(data))

	var decoded Rule
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, rule, decoded)
}

func TestRuleJSONExclude(t *testing.T) {
	var decoded Rule
	require.NoError(t, json.Unmarshal([]byte(`{"title":"x","type":"regex","pattern":"^a$","active":false,"include":"exclude"}`), &decoded))
	require.Equal(t, NewRule("x", Pattern{Type: Regex, Value: "^a$"}, false, false), decoded)
}

func TestRuleJSONRejectsUnknownValues(t *testing.T) {
	var decoded Rule
	require.ErrorContains(t, json.Unmarshal([]byte(`{"title":"x","type":"wildcard","pattern":"a","active":true,"include":"maybe"}`), &decoded), "unknown include value")
	require.ErrorContains(t, json.Unmarshal([]byte(`{"title":"x","type":"glob","pattern":"a","active":true,"include":"include"}`), &decoded), "unknown pattern type")
}

func TestWriteJSON(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, WriteJSON(out, []Rule{NewRule("Include Pattern[*://*.a&b.com]", WildcardPattern("*://*.a&b.com"), true, false)}))
	require.Equal(t, `[
  {
    "title": "Include Pattern[*://*.a&b.com]",
    "type": "wildcard",
    "pattern": "*://*.a&b.com",
    "active": true,
    "include": "exclude"
  }
]
`, out.String())

	out.Reset()
	require.NoError(t, WriteJSON(out, nil))
	require.Equal(t, "[]\n", out.String())
}
