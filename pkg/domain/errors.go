package domain

import "fmt"

// FetchError is returned when a source can't be fetched or parsed
type FetchError struct {
	Source Source
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Source.Name(), e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DeliveryError is returned when a notification can't be delivered
type DeliveryError struct {
	Channel ChannelRef
	Err     error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver to %q: %v", e.Channel, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// ConfigError reports invalid user supplied settings, state is left unchanged
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }
