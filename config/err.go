package config

import (
	"github.com/ezrec/risc16/translate"
)

var f = translate.From

// ErrKey is an unknown configuration global.
type ErrKey string

func (err ErrKey) Error() string {
	return f("unknown setting '%v'", string(err))
}

// ErrType is a configuration global of the wrong type.
type ErrType struct {
	Key  string
	Want string
	Got  string
}

func (err ErrType) Error() string {
	return f("setting '%v' must be a %v, not %v", err.Key, err.Want, err.Got)
}

// ErrRange is a configuration global with an unusable value.
type ErrRange struct {
	Key   string
	Value string
}

func (err ErrRange) Error() string {
	return f("setting '%v' value %v out of range", err.Key, err.Value)
}
