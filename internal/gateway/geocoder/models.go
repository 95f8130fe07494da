package geocoder

const (
	statusOK = "1"
)

type geocodeResponse struct {
	Status   string    `json:"status"`
	Info     string    `json:"info"`
	Count    string    `json:"count"`
	Geocodes []geocode `json:"geocodes"`
}

type geocode struct {
	FormattedAddress string `json:"formatted_address"`
	Location         string `json:"location"` // "lng,lat"
}
