package session

import "errors"

// ErrFlowTimeout is returned by Race when the flow outlives its deadline.
var ErrFlowTimeout = errors.New("session.flow_timeout")
