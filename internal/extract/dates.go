package extract

import (
	"regexp"
	"strconv"

	"github.com/rcliao/courtdocs/internal/model"
)

type datePattern struct {
	format  model.DateFormat
	re      *regexp.Regexp
	order   func(g []string) (day, month, year string)
	numeric bool // month is digits
}

var datePatterns = []datePattern{
	{
		format:  model.DateDDMMYYYY,
		re:      regexp.MustCompile(`(\d{1,2})[.\s]+(\d{1,2})[.\s]+(\d{4})`),
		order:   func(g []string) (string, string, string) { return g[1], g[2], g[3] },
		numeric: true,
	},
	{
		format:  model.DateYYYYMMDD,
		re:      regexp.MustCompile(`(\d{4})[.\s]+(\d{1,2})[.\s]+(\d{1,2})`),
		order:   func(g []string) (string, string, string) { return g[3], g[2], g[1] },
		numeric: true,
	},
	{
		format: model.DateDDMonthYYYY,
		re:     regexp.MustCompile(`(\d{1,2})[.\s]+([A-Za-zƏÜÖĞÇŞİ]+)[.\s]+(\d{4})`),
		order:  func(g []string) (string, string, string) { return g[1], g[2], g[3] },
	},
}

// ExtractDates finds every date in each of the three encodings and returns
// one canonical "DD.MM.YYYY" value per format. Later matches overwrite
// earlier ones under the same format.
func ExtractDates(text string) map[model.DateFormat]string {
	dates := make(map[model.DateFormat]string)
	for _, p := range datePatterns {
		for _, g := range p.re.FindAllStringSubmatch(text, -1) {
			day, month, year := p.order(g)
			v, ok := canonicalDate(day, month, year, p.numeric)
			if !ok {
				continue
			}
			dates[p.format] = v
		}
	}
	return dates
}

// canonicalDate zero-pads day (and a numeric month). A capture that is not a
// number is rejected.
func canonicalDate(day, month, year string, numericMonth bool) (string, bool) {
	if _, err := strconv.Atoi(day); err != nil {
		return "", false
	}
	if _, err := strconv.Atoi(year); err != nil {
		return "", false
	}
	if numericMonth {
		if _, err := strconv.Atoi(month); err != nil {
			return "", false
		}
		month = zeroPad(month)
	}
	return zeroPad(day) + "." + month + "." + year, true
}

func zeroPad(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
