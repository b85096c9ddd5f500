package tour

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestItemListNormalizesArray(t *testing.T) {
	var l itemList[KeywordItem]
	require.NoError(t, json.Unmarshal([]byte(`{"item":[{"title":"a"},{"title":"b"}]}`), &l))
	require.Len(t, l.Items, 2)
	require.Equal(t, "a", l.Items[0].Title)
}

func TestItemListNormalizesSingleObject(t *testing.T) {
	var l itemList[KeywordItem]
	require.NoError(t, json.Unmarshal([]byte(`{"item":{"title":"solo"}}`), &l))
	require.Len(t, l.Items, 1)
	require.Equal(t, "solo", l.Items[0].Title)
}

func TestItemListNormalizesEmptyShapes(t *testing.T) {
	for _, raw := range []string{`""`, `{}`, `null`, `{"item":null}`} {
		var l itemList[KeywordItem]
		require.NoError(t, json.Unmarshal([]byte(raw), &l), raw)
		require.Empty(t, l.Items, raw)
	}
}

func TestRankAcceptsStringAndNumber(t *testing.T) {
	var it RelatedItem
	require.NoError(t, json.Unmarshal([]byte(`{"rlteTatsNm":"x","rlteRank":"3"}`), &it))
	require.Equal(t, Rank("3"), it.Rank)

	require.NoError(t, json.Unmarshal([]byte(`{"rlteTatsNm":"x","rlteRank":7}`), &it))
	require.Equal(t, Rank("7"), it.Rank)

	require.NoError(t, json.Unmarshal([]byte(`{"rlteTatsNm":"x","rlteRank":null}`), &it))
	require.Equal(t, Rank(""), it.Rank)
}

func TestEnvelopeDecode(t *testing.T) {
	raw := `{"response":{"header":{"resultCode":"0000","resultMsg":"OK"},
		"body":{"items":{"item":{"rlteTatsNm":"테라로사","rlteCtgryLclsNm":"음식","rlteRank":1}},"totalCount":1}}}`
	var out apiResponse[RelatedItem]
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	require.Equal(t, "0000", out.Response.Header.ResultCode)
	require.Len(t, out.Response.Body.Items.Items, 1)
	require.Equal(t, "테라로사", out.Response.Body.Items.Items[0].Name)
	require.Equal(t, Rank("1"), out.Response.Body.Items.Items[0].Rank)
}
