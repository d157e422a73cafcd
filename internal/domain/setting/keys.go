package setting

// Setting categories and keys read by the local site contacts feature.
const (
	CategoryLocalSiteContacts = "local_site_contacts"
	KeyEnabled                = "enabled"
	KeyContacts               = "contacts"

	CategorySite           = "site"
	KeySiteContactUsername = "contact_username"
	KeyDefaultLocale       = "default_locale"
)
