// Package area maps human-readable Korean region names to the code pairs the
// two tourism backends expect: KorService2 area/sigungu codes and
// TarRlteTarService1 area/signgu codes.
package area

import "strings"

// Content type ids used by KorService2.
const (
	ContentTypeAttraction = "12"
	ContentTypeCulture    = "14"
	ContentTypeFestival   = "15"
	ContentTypeCourse     = "25"
	ContentTypeLeports    = "28"
	ContentTypeLodging    = "32"
	ContentTypeShopping   = "38"
	ContentTypeFood       = "39"
)

// Large-category labels used by TarRlteTarService1.
const (
	CategoryFood       = "음식"
	CategoryAttraction = "관광지"
)

type codePair struct {
	Kor string // KorService2 code
	Tar string // TarRlteTarService1 code
}

// province -> (KorService2 areaCode, TarRlteTarService1 areaCd)
var areaCodes = map[string]codePair{
	"서울": {"1", "11"},
	"인천": {"2", "28"},
	"대전": {"3", "30"},
	"대구": {"4", "27"},
	"광주": {"5", "29"},
	"부산": {"6", "26"},
	"울산": {"7", "31"},
	"세종": {"8", "36"},
	"경기": {"31", "41"},
	"강원": {"32", "51"},
	"충북": {"33", "43"},
	"충남": {"34", "44"},
	"경북": {"35", "47"},
	"경남": {"36", "48"},
	"전북": {"37", "52"},
	"전남": {"38", "46"},
	"제주": {"39", "50"},
}

// KorService2 areaCode -> sigungu name -> (sigunguCode, signguCd)
var sigunguCodes = map[string]map[string]codePair{
	"32": { // 강원
		"강릉": {"1", "51150"},
		"동해": {"2", "51130"},
		"삼척": {"3", "51140"},
		"속초": {"4", "51210"},
		"원주": {"5", "51110"},
		"춘천": {"6", "51100"},
	},
	"39": { // 제주
		"제주":  {"1", "50110"},
		"서귀포": {"2", "50130"},
	},
}

var contentTypes = map[string]string{
	"관광지":  ContentTypeAttraction,
	"문화시설": ContentTypeCulture,
	"축제":   ContentTypeFestival,
	"여행코스": ContentTypeCourse,
	"레포츠":  ContentTypeLeports,
	"숙박":   ContentTypeLodging,
	"쇼핑":   ContentTypeShopping,
	"음식점":  ContentTypeFood,
}

// Codes resolves a free-form province name ("강원특별자치도", "강원도", "강원")
// to its backend code pair. Matches by substring in either direction, so both
// abbreviations and official long names resolve.
func Codes(name string) (kor, tar string, ok bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", false
	}
	for key, p := range areaCodes {
		if strings.Contains(name, key) || strings.Contains(key, name) {
			return p.Kor, p.Tar, true
		}
	}
	return "", "", false
}

// SigunguCodes resolves a sigungu name within a KorService2 area code.
func SigunguCodes(korArea, name string) (kor, tar string, ok bool) {
	name = strings.TrimSpace(name)
	m, found := sigunguCodes[korArea]
	if !found || name == "" {
		return "", "", false
	}
	for key, p := range m {
		if strings.Contains(name, key) || strings.Contains(key, name) {
			return p.Kor, p.Tar, true
		}
	}
	return "", "", false
}

// TarCodes translates KorService2 codes (the ones clients submit) into the
// TarRlteTarService1 pair. Sigungu translation needs a known area; either code
// may come back empty when unmapped.
func TarCodes(korArea, korSigungu string) (areaCd, signguCd string) {
	for _, p := range areaCodes {
		if p.Kor == korArea {
			areaCd = p.Tar
			break
		}
	}
	if areaCd == "" || korSigungu == "" {
		return areaCd, ""
	}
	for _, p := range sigunguCodes[korArea] {
		if p.Kor == korSigungu {
			signguCd = p.Tar
			break
		}
	}
	return areaCd, signguCd
}

func ContentTypeID(label string) (string, bool) {
	id, ok := contentTypes[strings.TrimSpace(label)]
	return id, ok
}
