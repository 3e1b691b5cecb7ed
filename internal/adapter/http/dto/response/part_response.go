package response

import "autopecas_api/internal/domain/entities"

// Success envelopes for the /items surface. Part itself controls how preco
// is serialized, so these stay thin.

type PartItemResponse struct {
	Item entities.Part `json:"item"`
}

type PartListResponse struct {
	Items []entities.Part `json:"items"`
	Count int             `json:"count"`
}

type PartMessageResponse struct {
	Message string        `json:"message"`
	Item    entities.Part `json:"item"`
}

type PartDeletedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

func FromPart(p entities.Part) PartItemResponse {
	return PartItemResponse{Item: p}
}

func FromParts(parts []entities.Part) PartListResponse {
	if parts == nil {
		parts = []entities.Part{}
	}
	return PartListResponse{Items: parts, Count: len(parts)}
}

func FromPartWithMessage(message string, p entities.Part) PartMessageResponse {
	return PartMessageResponse{Message: message, Item: p}
}

func FromDeletedPart(message, id string) PartDeletedResponse {
	return PartDeletedResponse{Message: message, ID: id}
}
