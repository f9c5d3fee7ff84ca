package dto

import "salon/internal/domains/catalog/model"

type LocationResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (r *LocationResponse) FromModel(location model.Location) {
	r.ID = location.ID
	r.Name = location.Name
	r.Address = location.Address
}

type ItemResponse struct {
	Key         string `json:"key"`
	Kind        string `json:"kind"`
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	Duration    string `json:"duration"`
	Price       string `json:"price"`
	Category    string `json:"category"`
}

func (r *ItemResponse) FromItem(item model.Item) {
	r.Key = item.Key()
	r.Kind = string(item.Kind)
	r.ID = item.ID
	r.Name = item.Name
	r.Duration = item.Duration
	r.Price = item.Price
	r.Category = item.Category
}

func (r *ItemResponse) FromService(service model.Service) {
	r.FromItem(service.Item())
	r.Slug = service.Slug
}

func (r *ItemResponse) FromPackage(pack model.Package) {
	r.FromItem(pack.Item())
	r.Description = pack.Description
}

func FromLocations(locations []model.Location) []LocationResponse {
	res := make([]LocationResponse, len(locations))
	for i, location := range locations {
		res[i].FromModel(location)
	}

	return res
}

func FromServices(services []model.Service) []ItemResponse {
	res := make([]ItemResponse, len(services))
	for i, service := range services {
		res[i].FromService(service)
	}

	return res
}

func FromPackages(packages []model.Package) []ItemResponse {
	res := make([]ItemResponse, len(packages))
	for i, pack := range packages {
		res[i].FromPackage(pack)
	}

	return res
}

func FromItems(items []model.Item) []ItemResponse {
	res := make([]ItemResponse, len(items))
	for i, item := range items {
		res[i].FromItem(item)
	}

	return res
}
