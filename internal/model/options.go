package model

// FilterOptions lists the distinct values available for each dashboard
// filter, derived from the dimension tables.
type FilterOptions struct {
	RVTypes       []string `json:"rv_types"`
	States        []string `json:"states"`
	Regions       []string `json:"regions"`
	Cities        []string `json:"cities"`
	Conditions    []string `json:"conditions"`
	DealerGroups  []string `json:"dealer_groups"`
	Manufacturers []string `json:"manufacturers"`
}
