package client

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdaptStarLists(t *testing.T) {
	payload := `{
		"id": 5, "seasonId": 2, "name": "الثريا",
		"start_date": "2025-06-07", "end_date": "2025-06-19",
		"agricultural_info": null
	}`
	var raw rawStar
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	star, err := adaptStar(raw, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 5, star.ID)
	require.Equal(t, 2, star.SeasonID)
	require.NotNil(t, star.AgriculturalInfo)
	require.Empty(t, star.AgriculturalInfo)
	require.NotNil(t, star.Tips)
	require.Empty(t, star.Tips)
	require.Nil(t, star.Season)
}

func TestAdaptStarMissingRequired(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		field   string
	}{
		{"no id", `{"name":"x","start_date":"a","end_date":"b"}`, "id"},
		{"no name", `{"id":1,"start_date":"a","end_date":"b"}`, "name"},
		{"no start", `{"id":1,"name":"x","end_date":"b"}`, "start_date"},
		{"no end", `{"id":1,"name":"x","start_date":"a"}`, "end_date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var raw rawStar
			require.NoError(t, json.Unmarshal([]byte(tc.payload), &raw))

			_, err := adaptStar(raw, nil, nil)
			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			require.Equal(t, "star", decodeErr.Resource)
			require.Equal(t, tc.field, decodeErr.Field)
		})
	}
}

func TestAdaptStarSeasonOverride(t *testing.T) {
	payload := `{
		"id": 9, "seasonId": 1, "name": "سهيل",
		"start_date": "2025-08-24", "end_date": "2025-09-05",
		"tips": ["بداية موسم الخير"]
	}`
	var raw rawStar
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	seasonID := 4
	seasonName := "الخريف"
	star, err := adaptStar(raw, &seasonID, &seasonName)
	require.NoError(t, err)
	require.Equal(t, 4, star.SeasonID)
	require.NotNil(t, star.Season)
	require.Equal(t, 4, star.Season.ID)
	require.Equal(t, "الخريف", star.Season.Name)
	require.Equal(t, []string{"بداية موسم الخير"}, star.Tips)
}

func TestAdaptCalendarSeason(t *testing.T) {
	payload := `{
		"id": 3, "season_name": "الصيف", "duration": "93 يوم",
		"color_hex": "#F4A300", "icon_name": "sun",
		"stars": [
			{"id": 11, "name": "الدبران", "start_date": "2025-05-25", "end_date": "2025-06-06"},
			{"id": 12, "name": "الهقعة", "start_date": "2025-06-20", "end_date": "2025-07-02"}
		]
	}`
	var raw rawCalendarSeason
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	season, err := adaptCalendarSeason(raw)
	require.NoError(t, err)
	require.Equal(t, 3, season.ID)
	require.Equal(t, "الصيف", season.Name)
	require.Len(t, season.Stars, 2)
	for _, star := range season.Stars {
		require.Equal(t, 3, star.SeasonID)
		require.NotNil(t, star.Season)
		require.Equal(t, "الصيف", star.Season.Name)
	}
}

func TestAdaptCalendarSeasonMissingName(t *testing.T) {
	var raw rawCalendarSeason
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"stars":[]}`), &raw))

	_, err := adaptCalendarSeason(raw)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, "season_name", decodeErr.Field)
}

func TestAdaptOccasion(t *testing.T) {
	payload := `{
		"id": 7, "hijri_month": 9, "hijri_day": 1,
		"title": "بداية رمضان", "prayer_title": "دعاء الصيام",
		"prayer_text": null, "hijri_display": "1 رمضان"
	}`
	var raw rawOccasion
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	occasion, err := adaptOccasion(raw)
	require.NoError(t, err)
	require.Equal(t, 9, occasion.HijriMonth)
	require.Equal(t, 1, occasion.HijriDay)
	require.Nil(t, occasion.PrayerText)
	require.Equal(t, "1 رمضان", occasion.HijriDisplay)
}

func TestAdaptOccasionMissingTitle(t *testing.T) {
	var raw rawOccasion
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"hijri_month":1,"hijri_day":1,"prayer_title":"x"}`), &raw))

	_, err := adaptOccasion(raw)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, "occasion", decodeErr.Resource)
	require.Equal(t, "title", decodeErr.Field)
}

func TestStringListTolerance(t *testing.T) {
	require.Equal(t, []string{}, stringList(nil))
	require.Equal(t, []string{}, stringList(json.RawMessage(`null`)))
	require.Equal(t, []string{}, stringList(json.RawMessage(`"not an array"`)))
	require.Equal(t, []string{"a", "b"}, stringList(json.RawMessage(`["a","b"]`)))
}
