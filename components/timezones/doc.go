// Package timezones offers IANA timezone names as a bindable enum field.
//
// The default Catalog is embedded from data/iana_timezones.txt. Field
// declares a model.EnumField whose choices are the zones matching an optional
// query, so a form can offer a filtered timezone select:
//
//	zone, err := timezones.Field("zone", timezones.WithQuery("europe"))
//	schema := model.MustSchema(zone)
package timezones
