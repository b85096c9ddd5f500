package area

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodesResolvesLongAndShortNames(t *testing.T) {
	cases := []struct {
		name    string
		wantKor string
		wantTar string
	}{
		{"강원", "32", "51"},
		{"강원도", "32", "51"},
		{"강원특별자치도", "32", "51"},
		{"제주", "39", "50"},
		{"제주특별자치도", "39", "50"},
		{"서울", "1", "11"},
	}
	for _, tc := range cases {
		kor, tar, ok := Codes(tc.name)
		require.True(t, ok, tc.name)
		require.Equal(t, tc.wantKor, kor, tc.name)
		require.Equal(t, tc.wantTar, tar, tc.name)
	}
}

func TestCodesUnknownOrEmpty(t *testing.T) {
	_, _, ok := Codes("파리")
	require.False(t, ok)
	_, _, ok = Codes("  ")
	require.False(t, ok)
}

func TestSigunguCodes(t *testing.T) {
	kor, tar, ok := SigunguCodes("32", "강릉")
	require.True(t, ok)
	require.Equal(t, "1", kor)
	require.Equal(t, "51150", tar)

	kor, tar, ok = SigunguCodes("32", "강릉시")
	require.True(t, ok)
	require.Equal(t, "1", kor)
	require.Equal(t, "51150", tar)

	_, _, ok = SigunguCodes("32", "중구")
	require.False(t, ok)
	_, _, ok = SigunguCodes("1", "강릉") // area without a sigungu table
	require.False(t, ok)
	_, _, ok = SigunguCodes("32", "")
	require.False(t, ok)
}

func TestTarCodesTranslation(t *testing.T) {
	areaCd, signguCd := TarCodes("32", "1")
	require.Equal(t, "51", areaCd)
	require.Equal(t, "51150", signguCd)

	areaCd, signguCd = TarCodes("32", "")
	require.Equal(t, "51", areaCd)
	require.Empty(t, signguCd)

	areaCd, signguCd = TarCodes("32", "999")
	require.Equal(t, "51", areaCd)
	require.Empty(t, signguCd)

	areaCd, signguCd = TarCodes("0", "1")
	require.Empty(t, areaCd)
	require.Empty(t, signguCd)
}

func TestContentTypeID(t *testing.T) {
	id, ok := ContentTypeID("관광지")
	require.True(t, ok)
	require.Equal(t, ContentTypeAttraction, id)

	id, ok = ContentTypeID(" 음식점 ")
	require.True(t, ok)
	require.Equal(t, ContentTypeFood, id)

	_, ok = ContentTypeID("없는분류")
	require.False(t, ok)
}
