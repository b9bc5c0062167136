package bookmark

import (
	"net/url"
	"testing"

	"github.com/shenikar/civic_issue_map/internal/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var box = geo.BoundingBox{MinLat: 47.2474, MinLng: -122.4525, MaxLat: 47.2584, MaxLng: -122.4361}

func TestEncodeDecode(t *testing.T) {
	query := Encode(box, []string{"open", "closed"})

	assert.Equal(t,
		"max_lat=47.2584&max_lng=-122.4361&min_lat=47.2474&min_lng=-122.4525&status=open%2Cclosed",
		query)

	decoded, err := DecodeQuery(query)
	require.NoError(t, err)
	assert.Equal(t, box, decoded)

	values, err := url.ParseQuery(query)
	require.NoError(t, err)
	assert.Equal(t, []string{"open", "closed"}, ParseStatuses(values.Get(ParamStatus)))
}

func TestEncode_DefaultStatus(t *testing.T) {
	values, err := url.ParseQuery(Encode(box, nil))
	require.NoError(t, err)
	assert.Equal(t, "open", values.Get(ParamStatus))
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "missing max_lng", query: "min_lat=47.24&min_lng=-122.45&max_lat=47.25"},
		{name: "non-numeric", query: "min_lat=abc&min_lng=-122.45&max_lat=47.25&max_lng=-122.43"},
		{name: "empty value", query: "min_lat=&min_lng=-122.45&max_lat=47.25&max_lng=-122.43"},
		{name: "lat inverted", query: "min_lat=47.26&min_lng=-122.45&max_lat=47.25&max_lng=-122.43"},
		{name: "lng equal", query: "min_lat=47.24&min_lng=-122.45&max_lat=47.25&max_lng=-122.45"},
		{name: "nothing", query: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeQuery(tt.query)
			require.Error(t, err)
			assert.ErrorIs(t, err, geo.ErrInvalidBoundingBox)
		})
	}
}

func TestDecodeQuery_LeadingQuestionMark(t *testing.T) {
	decoded, err := DecodeQuery("?min_lat=1&min_lng=2&max_lat=3&max_lng=4&status=open")
	require.NoError(t, err)
	assert.Equal(t, geo.BoundingBox{MinLat: 1, MinLng: 2, MaxLat: 3, MaxLng: 4}, decoded)
}

func TestHasBoundingBox(t *testing.T) {
	assert.False(t, HasBoundingBox(url.Values{"status": {"open"}}))
	assert.True(t, HasBoundingBox(url.Values{"max_lat": {"x"}}))
}

func TestParseStatuses(t *testing.T) {
	assert.Equal(t, []string{"open"}, ParseStatuses(""))
	assert.Equal(t, []string{"open"}, ParseStatuses(" , ,"))
	assert.Equal(t, []string{"open"}, ParseStatuses("bogus"))
	assert.Equal(t, []string{"acknowledged", "archived"}, ParseStatuses(" Acknowledged ,archived,acknowledged,bogus"))
}

func TestIssueLink(t *testing.T) {
	assert.Equal(t, "issue.html?id=12345", IssueLink("12345"))
	assert.Equal(t, "issue.html?id=a+b%2Fc", IssueLink("a b/c"))
	assert.Equal(t, "", IssueLink(""))
}
