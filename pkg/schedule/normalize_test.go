package schedule

import (
	"reflect"
	"testing"
)

func TestNormalizeDayName(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"Monday", "Monday"},
		{"monday", "Monday"},
		{"MONDAY", "Monday"},
		{"mon", "Monday"},
		{"Lundi", "Monday"},
		{"lun", "Monday"},
		{"mardi", "Tuesday"},
		{"mar", "Tuesday"},
		{"mercredi", "Wednesday"},
		{"jeudi", "Thursday"},
		{"vendredi", "Friday"},
		{"sam", "Saturday"},
		{"dimanche", "Sunday"},
		{"  wed  ", "Wednesday"},
		// unknown tokens pass through upper-cased, never defaulted
		{"holiday", "HOLIDAY"},
	}

	for _, tt := range tests {
		if got := NormalizeDayName(tt.token); got != tt.want {
			t.Errorf("NormalizeDayName(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestIsDayToken(t *testing.T) {
	for _, token := range []string{"Monday", "jeudi", "Fri", "Mar", "dim", " tuesday "} {
		if !IsDayToken(token) {
			t.Errorf("IsDayToken(%q) = false, want true", token)
		}
	}
	for _, token := range []string{"Monday 08:00", "holiday", "G1", "", "remark"} {
		if IsDayToken(token) {
			t.Errorf("IsDayToken(%q) = true, want false", token)
		}
	}
}

func TestConvertDayToEnum(t *testing.T) {
	tests := []struct {
		day  string
		want Weekday
	}{
		{"Monday", Monday},
		{"tuesday", Tuesday},
		{"Sunday", Sunday},
		// unknown values fall back to Monday
		{"HOLIDAY", Monday},
		{"", Monday},
	}

	for _, tt := range tests {
		if got := ConvertDayToEnum(tt.day); got != tt.want {
			t.Errorf("ConvertDayToEnum(%q) = %q, want %q", tt.day, got, tt.want)
		}
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "windows line endings and tabs",
			raw:  "Monday\r\n\t08:00-09:30\r\n",
			want: []string{"Monday", "08:00-09:30"},
		},
		{
			name: "day tokens split off a shared line",
			raw:  "Monday G1:354 Tuesday G2:355",
			want: []string{"Monday", "G1:354", "Tuesday", "G2:355"},
		},
		{
			name: "dollar artifacts dropped",
			raw:  "Mon$day content$",
			want: []string{"Monday content"},
		},
		{
			name: "blank lines removed",
			raw:  "\n\n  \nMonday\n\n",
			want: []string{"Monday"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeText(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeText(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
