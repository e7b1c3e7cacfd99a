package models

import "golang.org/x/exp/slices"

// Category is one entry of the fixed listing category set. The set is
// part of the product, not operator data, so it lives in code rather
// than a table.
type Category struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

var Categories = []Category{
	{Label: "Beach", Description: "This property is close to the beach!"},
	{Label: "Windmills", Description: "This property has windmills!"},
	{Label: "Modern", Description: "This property is modern!"},
	{Label: "Countryside", Description: "This property is in the countryside!"},
	{Label: "Pools", Description: "This property has a beautiful pool!"},
	{Label: "Islands", Description: "This property is on an island!"},
	{Label: "Lake", Description: "This property is near a lake!"},
	{Label: "Skiing", Description: "This property has skiing activities!"},
	{Label: "Castles", Description: "This property is an ancient castle!"},
	{Label: "Caves", Description: "This property is in a spooky cave!"},
	{Label: "Camping", Description: "This property offers camping activities!"},
	{Label: "Arctic", Description: "This property is in an arctic environment!"},
	{Label: "Desert", Description: "This property is in the desert!"},
	{Label: "Barns", Description: "This property is in a barn!"},
	{Label: "Lux", Description: "This property is brand new and luxurious!"},
}

var categoryLabels = func() []string {
	labels := make([]string, 0, len(Categories))
	for _, category := range Categories {
		labels = append(labels, category.Label)
	}
	return labels
}()

func ValidCategory(label string) bool {
	return slices.Contains(categoryLabels, label)
}
