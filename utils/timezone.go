package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var gmtOffset = regexp.MustCompile(`^GMT([+-])(\d{1,2})(?::(\d{2}))?$`)

// GetLocation returns the location of a GMT+H or GMT+H:MM timezone, or of an
// IANA zone name such as "Asia/Taipei". An empty or unknown timezone is nil.
func GetLocation(timezone string) *time.Location {
	if timezone == "" {
		return nil
	}

	name := strings.ToUpper(timezone)
	if m := gmtOffset.FindStringSubmatch(name); m != nil {
		hours, _ := strconv.Atoi(m[2])
		minutes := 0
		if m[3] != "" {
			minutes, _ = strconv.Atoi(m[3])
		}
		if hours > 14 || minutes >= 60 {
			return nil
		}

		offset := hours*3600 + minutes*60
		if m[1] == "-" {
			offset = -offset
		}
		return time.FixedZone(name, offset)
	}

	if loc, err := time.LoadLocation(timezone); err == nil {
		return loc
	}
	return nil
}

// MustGetLocation is GetLocation for configured values, falling back to UTC
// with an error describing the bad value
func MustGetLocation(timezone string) (*time.Location, error) {
	if timezone == "" {
		return time.UTC, nil
	}
	if loc := GetLocation(timezone); loc != nil {
		return loc, nil
	}
	return time.UTC, fmt.Errorf("unknown timezone %q", timezone)
}
