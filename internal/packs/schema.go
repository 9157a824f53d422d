// Package packs hosts the pack editors and the pack list they return to.
package packs

import (
	"adminctl/internal/form"
)

// Draft field names.
const (
	FieldName         = "name"
	FieldCategory     = "category"
	FieldDescription  = "description"
	FieldSubscription = "subscription"
	FieldPrice        = "price"
	FieldDuration     = "duration"
	FieldBoost        = "boost"
	FieldCDFPrice     = "cdf_price"
	FieldStatus       = "status"
	FieldCanPublish   = "can_publish"
)

// ListRoute is the parent screen of both pack forms.
const ListRoute = "/packs"

// Schema returns the pack form. The secondary-currency price only exists
// on the edit form, where it is optional.
func Schema(edit bool) form.Schema {
	fields := []form.Field{
		{Name: FieldName, Label: "Name", Wire: "name", Kind: form.Text, Required: true},
		{Name: FieldCategory, Label: "Category", Wire: "categorie", Kind: form.Text, Required: true},
		{Name: FieldDescription, Label: "Description", Wire: "description", Kind: form.Text, Required: true},
		{Name: FieldSubscription, Label: "Subscription type", Wire: "abonnement", Kind: form.Text, Required: true},
		{Name: FieldPrice, Label: "Price", Wire: "price", Kind: form.Number, Required: true, Positive: true},
		{Name: FieldDuration, Label: "Duration (days)", Wire: "duree_publication_en_jour", Kind: form.Number, Required: true, Positive: true},
		{Name: FieldBoost, Label: "Boost percentage", Wire: "boost_percentage", Kind: form.Number, Required: true, Positive: true},
	}
	if edit {
		fields = append(fields, form.Field{
			Name: FieldCDFPrice, Label: "CDF price", Wire: "cdf_price", Kind: form.Number,
			Positive: true, Optional: true, OmitEmpty: true,
		})
	}
	fields = append(fields,
		form.Field{Name: FieldStatus, Label: "Active", Wire: "status", Kind: form.Bool, DefaultFlag: true},
		form.Field{Name: FieldCanPublish, Label: "Can publish trainings", Wire: "peux_publier_formation", Kind: form.Bool},
	)
	return form.Schema{
		Fields: fields,
		List:   &form.ListField{Label: "Advantage", Wire: "avantages"},
	}
}
