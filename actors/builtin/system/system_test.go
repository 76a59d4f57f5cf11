package system_test

import (
	"testing"

	"github.com/vesta-protocol/go-vesta-actors/actors/builtin/system"
	"github.com/vesta-protocol/go-vesta-actors/support/mock"
)

func TestExports(t *testing.T) {
	mock.CheckActorExports(t, system.Actor{})
}
