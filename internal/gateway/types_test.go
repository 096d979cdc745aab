package gateway

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestDealerExtraRoundTrip(t *testing.T) {
	raw := []byte(`{"id":3,"city":"Topeka","state":"Kansas","lat":34.1,"long":-118.2}`)

	var d Dealer
	require.NoError(t, json.Unmarshal(raw, &d))
	require.Equal(t, 3, d.ID)
	require.Equal(t, "Topeka", d.City)
	require.Contains(t, d.Extra, "lat")
	require.Contains(t, d.Extra, "long")

	out, err := json.Marshal(d)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	require.Equal(t, 34.1, got["lat"])
	require.Equal(t, "Kansas", got["state"])
}

func TestReviewSentimentSerialization(t *testing.T) {
	r := Review{ID: 1, Review: "Great service"}

	out, err := json.Marshal(r)
	require.NoError(t, err)
	// 未標注時 sentiment 必須為 null，不可省略
	require.Contains(t, string(out), `"sentiment":null`)

	label := "positive"
	r.Sentiment = &label
	out, err = json.Marshal(r)
	require.NoError(t, err)
	require.Contains(t, string(out), `"sentiment":"positive"`)
}

func TestReviewUnmarshalKeepsUnknownFields(t *testing.T) {
	raw := []byte(`{"id":2,"review":"ok","another_field":true}`)
	var r Review
	require.NoError(t, json.Unmarshal(raw, &r))
	require.Equal(t, "ok", r.Review)
	require.Contains(t, r.Extra, "another_field")
}
