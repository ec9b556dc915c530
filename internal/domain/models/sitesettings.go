// internal/domain/models/sitesettings.go
package models

import "time"

// SiteSettings holds the company details shown across the site.
// There is exactly one settings document.
type SiteSettings struct {
	ID            int64     `bson:"-" json:"id"`
	CompanyNameEN string    `bson:"company_name_en" json:"company_name_en"`
	CompanyNameAR string    `bson:"company_name_ar" json:"company_name_ar"`
	ShortAboutEN  string    `bson:"short_about_en" json:"short_about_en"`
	ShortAboutAR  string    `bson:"short_about_ar" json:"short_about_ar"`
	AddressEN     string    `bson:"address_en" json:"address_en"`
	AddressAR     string    `bson:"address_ar" json:"address_ar"`
	Email         string    `bson:"email" json:"email"`
	Phone1        string    `bson:"phone1" json:"phone1"`
	Phone2        string    `bson:"phone2" json:"phone2"`
	FooterTextEN  string    `bson:"footer_text_en" json:"footer_text_en"`
	FooterTextAR  string    `bson:"footer_text_ar" json:"footer_text_ar"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// SiteSettingsID is the fixed id of the settings singleton.
const SiteSettingsID = 1

// Default company names used when no settings document exists.
const (
	DefaultCompanyNameEN = "Hydra Tech"
	DefaultCompanyNameAR = "هيدرا تك"
)

// DefaultSiteSettings returns the settings used before any have been saved.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		ID:            SiteSettingsID,
		CompanyNameEN: DefaultCompanyNameEN,
		CompanyNameAR: DefaultCompanyNameAR,
	}
}

// CompanyName returns the company name for the locale.
func (s SiteSettings) CompanyName(l Locale) string { return l.Pick(s.CompanyNameEN, s.CompanyNameAR) }

// ShortAbout returns the short about text for the locale.
func (s SiteSettings) ShortAbout(l Locale) string { return l.Pick(s.ShortAboutEN, s.ShortAboutAR) }

// Address returns the postal address for the locale.
func (s SiteSettings) Address(l Locale) string { return l.Pick(s.AddressEN, s.AddressAR) }

// FooterText returns the footer line for the locale.
func (s SiteSettings) FooterText(l Locale) string { return l.Pick(s.FooterTextEN, s.FooterTextAR) }
