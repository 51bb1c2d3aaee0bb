// Request bodies use the camelCase field names the dashboard sends. Responses
// (responses.go) keep the backend's historical snake_case for stars, occasions
// and prayers; seasons are camelCase in both directions.
package packets

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateSeasonRequest struct {
	Name      string `json:"name" binding:"required"`
	ColorHex  string `json:"colorHex" binding:"required"`
	IconName  string `json:"iconName" binding:"required"`
	Duration  string `json:"duration" binding:"required"`
	SortOrder int    `json:"sortOrder"`
}

type UpdateSeasonRequest struct {
	Name      *string `json:"name"`
	ColorHex  *string `json:"colorHex"`
	IconName  *string `json:"iconName"`
	Duration  *string `json:"duration"`
	SortOrder *int    `json:"sortOrder"`
}

type CreateStarRequest struct {
	SeasonID         int      `json:"seasonId" binding:"required"`
	Name             string   `json:"name" binding:"required"`
	StartDate        string   `json:"startDate" binding:"required"`
	EndDate          string   `json:"endDate" binding:"required"`
	Description      *string  `json:"description"`
	WeatherInfo      *string  `json:"weatherInfo"`
	AgriculturalInfo []string `json:"agriculturalInfo"`
	Tips             []string `json:"tips"`
}

type UpdateStarRequest struct {
	SeasonID         *int     `json:"seasonId"`
	Name             *string  `json:"name"`
	StartDate        *string  `json:"startDate"`
	EndDate          *string  `json:"endDate"`
	Description      *string  `json:"description"`
	WeatherInfo      *string  `json:"weatherInfo"`
	AgriculturalInfo []string `json:"agriculturalInfo"`
	Tips             []string `json:"tips"`
}

type CreateOccasionRequest struct {
	HijriMonth  int     `json:"hijriMonth" binding:"required,min=1,max=12"`
	HijriDay    int     `json:"hijriDay" binding:"required,min=1,max=30"`
	Title       string  `json:"title" binding:"required"`
	PrayerTitle string  `json:"prayerTitle" binding:"required"`
	PrayerText  *string `json:"prayerText"`
}

type UpdateOccasionRequest struct {
	HijriMonth  *int    `json:"hijriMonth" binding:"omitempty,min=1,max=12"`
	HijriDay    *int    `json:"hijriDay" binding:"omitempty,min=1,max=30"`
	Title       *string `json:"title"`
	PrayerTitle *string `json:"prayerTitle"`
	PrayerText  *string `json:"prayerText"`
}

type CreatePrayerRequest struct {
	Text string `json:"text" binding:"required"`
}

type UpdatePrayerRequest struct {
	Text string `json:"text" binding:"required"`
}
