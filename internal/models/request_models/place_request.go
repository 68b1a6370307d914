package request_models

type PlaceDetailsRequest struct {
	PlaceQuery string `json:"placeQuery"`
}
