package config

import (
	"os"

	"github.com/ImSingee/go-ex/ee"
)

var ErrNotExist = os.ErrNotExist

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = ee.New("invalid config")

func IsNotExist(err error) bool {
	return ee.Is(err, ErrNotExist)
}

func IsInvalid(err error) bool {
	return ee.Is(err, ErrInvalid)
}
