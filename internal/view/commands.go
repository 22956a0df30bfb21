package view

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/q2view/internal/engine/asset"
	"github.com/Faultbox/q2view/pkg/math"
)

// ErrUnknownCommand is returned by Exec for commands the view does not own.
var ErrUnknownCommand = errors.New("unknown command")

// GunFrame returns the animation frame forced on the view weapon, 0 for none.
func (a *Assembler) GunFrame() int { return a.gunFrame }

// GunModel returns the model forced on the view weapon, asset.None for none.
func (a *Assembler) GunModel() asset.Handle { return a.gunModel }

// Exec runs one view console command and returns its printed output.
//
//	gun_next          advance the forced weapon frame
//	gun_prev          step the forced weapon frame back
//	gun_model [name]  force models/<name>/tris.md2, or clear with no name
//	viewpos           print the view origin and yaw
func (a *Assembler) Exec(line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", nil
	}

	var out string
	switch args[0] {
	case "gun_next":
		a.gunFrame++
		out = fmt.Sprintf("frame %d", a.gunFrame)
	case "gun_prev":
		a.gunFrame--
		if a.gunFrame < 0 {
			a.gunFrame = 0
		}
		out = fmt.Sprintf("frame %d", a.gunFrame)
	case "gun_model":
		if len(args) < 2 {
			a.gunModel = asset.None
			return "", nil
		}
		a.gunModel = a.renderer.RegisterModel("models/" + args[1] + "/tris.md2")
		return "", nil
	case "viewpos":
		o := a.fd.ViewOrigin
		out = fmt.Sprintf("(%.f %.f %.f) : %.f", o[0], o[1], o[2], a.fd.ViewAngles[math.Yaw])
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	a.log.Info(out, zap.String("command", args[0]))
	return out, nil
}
