package zippopotam

type lookupResponse struct {
	PostCode    string  `json:"post code"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country abbreviation"`
	Places      []place `json:"places"`
}

type place struct {
	PlaceName string `json:"place name"`
	State     string `json:"state"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}
