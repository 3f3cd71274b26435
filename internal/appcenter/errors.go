package appcenter

import "errors"

var (
	ErrOrgNameMissing = errors.New(`The "Organization name" has to be configured on datasource settings. Available options can be checked the listOrgs query.`)
	ErrAppNameMissing = errors.New(`The "App name" has to be configured on datasource settings. Available options can be checked the listApps query.`)

	ErrUnexpectedStatus = errors.New("unexpected status code")
)
