package entities

import "errors"

// ErrEmptyReport rejects Finish without a written report.
var ErrEmptyReport = errors.New("report is required to complete an intervention")
