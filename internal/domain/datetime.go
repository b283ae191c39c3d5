package domain

import (
	"time"

	"golang.org/x/text/language"
)

// DateTime is a localized snapshot of a single instant
type DateTime struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	Timestamp string `json:"timestamp"`
}

// TimeLayout is the 24-hour clock layout shared by every locale
const TimeLayout = "15:04:05"

// TimestampLayout is RFC 3339 with millisecond precision
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// CurrentDateTime samples the current instant in the default locale
func CurrentDateTime() DateTime {
	return DateTimeAt(time.Now(), language.English)
}

// CurrentDateTimeIn samples the current instant for the given locale
func CurrentDateTimeIn(tag language.Tag) DateTime {
	return DateTimeAt(time.Now(), tag)
}

// DateTimeAt formats t for tag. All fields derive from t.
func DateTimeAt(t time.Time, tag language.Tag) DateTime {
	return DateTime{
		Date:      t.Format(DateLayout(tag)),
		Time:      t.Format(TimeLayout),
		Timestamp: t.UTC().Format(TimestampLayout),
	}
}

// DateLayout returns the numeric date layout customary for tag's language
func DateLayout(tag language.Tag) string {
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		if region, conf := tag.Region(); conf == language.Exact && region.String() != "US" {
			return "02/01/2006"
		}
		return "01/02/2006"
	case "fr", "es", "it", "pt":
		return "02/01/2006"
	case "de", "ru":
		return "02.01.2006"
	case "nl":
		return "02-01-2006"
	case "ja", "zh", "ko":
		return "2006/01/02"
	default:
		return "2006-01-02"
	}
}
