package inbound

type FlightsResponse struct {
	Flights    []FlightResponse  `json:"flights"`
	Routes     []RouteResponse   `json:"routes"`
	LastUpdate *string           `json:"lastUpdate"`
	APIStatus  APIStatusResponse `json:"apiStatus"`
}

type RouteResponse struct {
	Departure string `json:"dep"`
	Arrival   string `json:"arr"`
	Name      string `json:"name"`
}

type APIStatusResponse struct {
	CallsToday     int    `json:"callsToday"`
	MaxDaily       int    `json:"maxDaily"`
	RemainingToday int    `json:"remainingToday"`
	CacheDuration  string `json:"cacheDuration"`
	CanRefresh     bool   `json:"canRefresh"`
}

type FlightResponse struct {
	FlightNumber string              `json:"flight_number"`
	Airline      string              `json:"airline"`
	Status       string              `json:"status"`
	FlightDate   string              `json:"flight_date,omitempty"`
	Departure    FlightPointResponse `json:"departure"`
	Arrival      FlightPointResponse `json:"arrival"`
	Aircraft     string              `json:"aircraft"`
	Live         *LiveResponse       `json:"live"`
	Source       string              `json:"source"`
	Route        string              `json:"route,omitempty"`
	FromCache    bool                `json:"fromCache,omitempty"`
	CacheAge     int                 `json:"cacheAge,omitempty"`
	LimitReached bool                `json:"limitReached,omitempty"`
}

type FlightPointResponse struct {
	Airport   string  `json:"airport"`
	City      string  `json:"city"`
	Scheduled *string `json:"scheduled"`
	Estimated *string `json:"estimated"`
	Actual    *string `json:"actual"`
	Delay     *int    `json:"delay"`
	Terminal  string  `json:"terminal"`
	Gate      string  `json:"gate"`
}

type LiveResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
	Speed     float64 `json:"speed"`
	Heading   float64 `json:"heading"`
}

type NewsResponse struct {
	News       []NewsItemResponse `json:"news"`
	Cached     bool               `json:"cached"`
	LastUpdate string             `json:"lastUpdate"`
	Keywords   []string           `json:"keywords"`
}

type NewsSearchResponse struct {
	News  []NewsItemResponse `json:"news"`
	Query string             `json:"query"`
}

type NewsItemResponse struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	PubDate   string `json:"pubDate"`
	Source    string `json:"source"`
	Snippet   string `json:"snippet"`
	Query     string `json:"query"`
	Relevance int    `json:"relevance"`
}

type StatsResponse struct {
	APIStats APIStatsResponse   `json:"apiStats"`
	Today    TodayResponse      `json:"today"`
	Cache    CacheStatsResponse `json:"cache"`
	Config   ConfigResponse     `json:"config"`
}

type APIStatsResponse struct {
	TotalCalls  int                  `json:"totalCalls"`
	LastReset   string               `json:"lastReset"`
	CallHistory []CallRecordResponse `json:"callHistory"`
}

type CallRecordResponse struct {
	Timestamp string `json:"timestamp"`
	Remaining int    `json:"remaining"`
}

type TodayResponse struct {
	Calls     int `json:"calls"`
	Remaining int `json:"remaining"`
	Limit     int `json:"limit"`
}

type CacheStatsResponse struct {
	Duration   string  `json:"duration"`
	Flights    int     `json:"flights"`
	Routes     int     `json:"routes"`
	News       bool    `json:"news"`
	LastUpdate *string `json:"lastUpdate"`
}

type ConfigResponse struct {
	Providers        map[string]string `json:"providers"`
	MonthlyLimit     int               `json:"monthlyLimit"`
	RecommendedDaily int               `json:"recommendedDaily"`
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	APIs      map[string]string `json:"apis"`
}
