package monitoring

import "errors"

var errProbeStatus = errors.New("unexpected probe status")
