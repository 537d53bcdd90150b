package accessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadFromBodyNormalizes(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "numbers and duplicate keys",
			body:     `{"v":1.0,"e":1e3,"d":{"a":1,"a":2}}`,
			expected: `{"v":1,"e":1000,"d":{"a":2}}`,
		},
		{
			name:     "duplicate key keeps first position",
			body:     `{"a":1,"b":2,"a":3}`,
			expected: `{"a":3,"b":2}`,
		},
		{
			name:     "array index keys first",
			body:     `{"b":1,"10":2,"2":3,"01":4}`,
			expected: `{"2":3,"10":2,"b":1,"01":4}`,
		},
		{
			name:     "number forms",
			body:     `[12.50,-0,1e21,1.5e-7,0.000001,123456789012,-2.5E+2,1e400]`,
			expected: `[12.5,0,1e+21,1.5e-7,0.000001,123456789012,-250,null]`,
		},
		{
			name:     "strings are re-encoded",
			body:     `{"s":"café <b>","q":"say \"hi\""}`,
			expected: `{"s":"café <b>","q":"say \"hi\""}`,
		},
		{
			name:     "whitespace and literals",
			body:     " { \"t\" : true , \"f\" : false, \"n\" : null, \"e\": {}, \"l\": [ ] }\n",
			expected: `{"t":true,"f":false,"n":null,"e":{},"l":[]}`,
		},
		{
			name:     "not json",
			body:     "plain <text>",
			expected: `"plain <text>"`,
		},
		{
			name:     "empty",
			body:     "  ",
			expected: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, payloadFromBody([]byte(tt.body)).String())
		})
	}
}

func TestPayloadIndentAfterNormalize(t *testing.T) {
	out, err := payloadFromBody([]byte(`{"v":1.0,"e":1e3,"d":{"a":1,"a":2}}`)).Indent()
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"v\": 1,\n    \"e\": 1000,\n    \"d\": {\n        \"a\": 2\n    }\n}\n", string(out))
}

func TestUnexpectedStatusMessageNormalized(t *testing.T) {
	err := &UnexpectedStatusError{StatusCode: 400, Body: []byte(`{"n": 2.0, "reason": "bad", "reason": "worse"}`)}
	assert.Equal(t, `{"n":2,"reason":"worse"}`, err.Error())

	err = &UnexpectedStatusError{StatusCode: 502}
	assert.Equal(t, "Bad Gateway", err.Error())
}
