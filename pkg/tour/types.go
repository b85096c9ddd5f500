package tour

import (
	"bytes"
	"encoding/json"
)

// KeywordItem is one KorService2 searchKeyword2 hit.
type KeywordItem struct {
	Title         string `json:"title"`
	Addr1         string `json:"addr1"`
	ContentID     string `json:"contentid"`
	ContentTypeID string `json:"contenttypeid"`
	FirstImage    string `json:"firstimage"`
	MapX          string `json:"mapx"`
	MapY          string `json:"mapy"`
	Tel           string `json:"tel"`
	Overview      string `json:"overview"`
}

// RelatedItem is one TarRlteTarService1 searchKeyword1 hit: a related
// attraction with a popularity rank from Tmap movement data.
type RelatedItem struct {
	Name          string `json:"rlteTatsNm"`
	CategoryLarge string `json:"rlteCtgryLclsNm"`
	CategoryMid   string `json:"rlteCtgryMclsNm"`
	CategorySmall string `json:"rlteCtgrySclsNm"`
	Rank          Rank   `json:"rlteRank"`
	BaseYM        string `json:"baseYm"`
}

// Rank is the source-supplied popularity rank. It accepts both `"3"` and
// `3` on the wire; the backend is not consistent.
type Rank string

func (s *Rank) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = Rank(v)
		return nil
	}
	*s = Rank(b)
	return nil
}

func (s Rank) String() string { return string(s) }

// itemList normalizes the backend's polymorphic items field: `{"item": [...]}`
// for many results, `{"item": {...}}` for exactly one, and `""` for none.
// Downstream code only ever sees a slice.
type itemList[T any] struct {
	Items []T
}

func (l *itemList[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) || bytes.Equal(b, []byte(`""`)) || bytes.Equal(b, []byte("{}")) {
		l.Items = nil
		return nil
	}
	var wrap struct {
		Item json.RawMessage `json:"item"`
	}
	if err := json.Unmarshal(b, &wrap); err != nil {
		return err
	}
	raw := bytes.TrimSpace(wrap.Item)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		l.Items = nil
		return nil
	}
	if raw[0] == '[' {
		return json.Unmarshal(raw, &l.Items)
	}
	var one T
	if err := json.Unmarshal(raw, &one); err != nil {
		return err
	}
	l.Items = []T{one}
	return nil
}

type apiResponse[T any] struct {
	Response struct {
		Header struct {
			ResultCode string `json:"resultCode"`
			ResultMsg  string `json:"resultMsg"`
		} `json:"header"`
		Body struct {
			Items      itemList[T] `json:"items"`
			TotalCount int         `json:"totalCount"`
		} `json:"body"`
	} `json:"response"`
}

// Combined holds the result sets of both backends for one query.
type Combined struct {
	Keyword []KeywordItem
	Related []RelatedItem
}
