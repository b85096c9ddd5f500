package area

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadOverrides merges extra code rows from an xlsx workbook into the builtin
// tables. Sheet "AreaCodes": name | kor_code | tar_code. Sheet "SigunguCodes":
// area_kor_code | name | kor_code | tar_code. Unknown sheets and short or
// header rows are skipped, so a partial workbook is fine.
func LoadOverrides(path string) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cell := func(row []string, i int) string {
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	if rows, err := f.GetRows("AreaCodes"); err == nil {
		for i, row := range rows {
			name, kor, tar := cell(row, 0), cell(row, 1), cell(row, 2)
			if name == "" || kor == "" {
				continue
			}
			if i == 0 && strings.EqualFold(name, "name") {
				continue
			}
			areaCodes[name] = codePair{Kor: kor, Tar: tar}
		}
	}

	if rows, err := f.GetRows("SigunguCodes"); err == nil {
		for i, row := range rows {
			areaKor, name, kor, tar := cell(row, 0), cell(row, 1), cell(row, 2), cell(row, 3)
			if areaKor == "" || name == "" || kor == "" {
				continue
			}
			if i == 0 && strings.EqualFold(name, "name") {
				continue
			}
			if sigunguCodes[areaKor] == nil {
				sigunguCodes[areaKor] = map[string]codePair{}
			}
			sigunguCodes[areaKor][name] = codePair{Kor: kor, Tar: tar}
		}
	}

	return nil
}
