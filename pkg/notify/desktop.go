// Package notify implements the desktop notification capability consumed by
// the reminder scheduler.
package notify

import (
	"context"

	"github.com/gen2brain/beeep"
)

// Desktop raises system notifications through beeep. Desktop sessions do not
// gate notifications behind a runtime permission, so permission is always
// considered granted; the capability surface still exposes the request flow
// for callers that treat it uniformly.
type Desktop struct {
	AppName string
}

// NewDesktop creates a desktop notifier labelled with the given app name.
func NewDesktop(appName string) *Desktop {
	beeep.AppName = appName
	return &Desktop{AppName: appName}
}

// HasPermission reports whether notifications may be shown.
func (d *Desktop) HasPermission() bool {
	return true
}

// RequestPermission asks for notification permission. On the desktop this
// completes immediately.
func (d *Desktop) RequestPermission(ctx context.Context) (bool, error) {
	return true, nil
}

// Show displays a notification with the event title as the headline. The id
// is accepted for interface symmetry; beeep has no de-duplication tag.
func (d *Desktop) Show(id, title, body string) error {
	return beeep.Notify(title, body, "")
}
