package game

import (
	gomath "math"

	"github.com/Faultbox/q2view/internal/client"
	"github.com/Faultbox/q2view/internal/engine/asset"
	"github.com/Faultbox/q2view/internal/engine/picking"
	"github.com/Faultbox/q2view/internal/engine/renderer"
	"github.com/Faultbox/q2view/internal/engine/scene"
	"github.com/Faultbox/q2view/internal/view"
	"github.com/Faultbox/q2view/pkg/math"
)

// Player walk loop around the room center.
const (
	walkRadius  = 192
	walkSpeed   = 20 // degrees of arc per second
	standHeight = 24
	viewHeight  = 22
)

// flicker is a light style pattern; 'a' is dark, 'm' is normal and 'z' double.
const flicker = "mmnmmommommnonmmonqnmmo"

// Monster is a stationary entity that turns in place.
type Monster struct {
	Number     int
	Origin     math.Vec3
	Yaw        float32
	TurnRate   float32 // degrees per second
	Flashlight bool
}

var defaultMonsters = []Monster{
	{Number: 2, Origin: math.Vec3{320, 0, standHeight}, Yaw: 180, TurnRate: 45, Flashlight: true},
	{Number: 3, Origin: math.Vec3{-320, 160, standHeight}, TurnRate: -30},
	{Number: 4, Origin: math.Vec3{0, -360, standHeight}, Yaw: 90, TurnRate: 90, Flashlight: true},
}

// Script produces snapshots and entities for a scripted session. It is the
// entity builder handed to the view.
type Script struct {
	view     *view.Assembler
	monsters []Monster

	playerModel  asset.Handle
	playerSkin   asset.Handle
	monsterModel asset.Handle
	monsterSkin  asset.Handle
	gunModel     asset.Handle
}

// NewScript registers the session's models with r.
func NewScript(r renderer.Renderer) *Script {
	return &Script{
		monsters:     defaultMonsters,
		playerModel:  r.RegisterModel("players/male/tris.md2"),
		playerSkin:   r.RegisterImage("players/male/grunt.pcx", 0),
		monsterModel: r.RegisterModel("models/monsters/soldier/tris.md2"),
		monsterSkin:  r.RegisterImage("models/monsters/soldier/skin.pcx", 0),
		gunModel:     r.RegisterModel("models/weapons/v_blast/tris.md2"),
	}
}

// Attach connects the script to the view it feeds.
func (s *Script) Attach(v *view.Assembler) { s.view = v }

// Monsters returns the scripted monsters.
func (s *Script) Monsters() []Monster { return s.monsters }

// NewRoom builds the session's world: a closed room with a pillar in the
// middle and a window pane that flashlights shine through.
func NewRoom() *picking.BoxWorld {
	w := picking.NewBoxWorld(picking.Room(picking.NewAABB(
		math.Vec3{-512, -512, 0},
		math.Vec3{512, 512, 256},
	), 16)...)

	w.Add(picking.NewAABB(math.Vec3{-32, -32, 0}, math.Vec3{32, 32, 256}), picking.ContentsSolid)
	w.Add(picking.NewAABB(math.Vec3{-256, 250, 0}, math.Vec3{-128, 254, 128}), picking.ContentsWindow)
	return w
}

// Snapshot returns server frame num taken at ms.
func (s *Script) Snapshot(num, ms int) client.Snapshot {
	t := float32(ms) * 0.001
	kick := float32(gomath.Sin(float64(t)*6)) * 2
	return client.Snapshot{
		Valid:     true,
		Number:    num,
		ClientNum: 0,
		PS: client.PlayerState{
			ViewAngles: playerAngles(t),
			ViewOffset: math.Vec3{0, 0, viewHeight},
			GunAngles:  math.Vec3{kick, 0, 0},
		},
	}
}

// Predict moves the local player to where it is at the client's time.
func (s *Script) Predict(cl *client.State) {
	t := float32(cl.Time) * 0.001
	cl.PlayerEntityOrigin = playerOrigin(t)
	cl.PredictedAngles = playerAngles(t)
	cl.BaseClientInfo = client.ClientInfo{Model: s.playerModel, Skin: s.playerSkin}
}

func playerOrigin(t float32) math.Vec3 {
	a := float64(math.DegToRad(walkSpeed * t))
	return math.Vec3{
		walkRadius * float32(gomath.Cos(a)),
		walkRadius * float32(gomath.Sin(a)),
		standHeight,
	}
}

// playerAngles faces the room center.
func playerAngles(t float32) math.Vec3 {
	return math.Vec3{10, walkSpeed*t + 180, 0}
}

// AddEntities adds the view weapon, monsters, their flashlights, a torch,
// sparks and light styles, and sets the camera.
func (s *Script) AddEntities(f *scene.Frame, cl *client.State) {
	t := float32(cl.Time) * 0.001
	ps, ops := &cl.Frame.PS, &cl.OldFrame.PS

	origin := cl.PlayerEntityOrigin.Add(math.LerpVec3(ops.ViewOffset, ps.ViewOffset, cl.LerpFrac))
	cl.SetView(origin, cl.PredictedAngles)
	cl.View.Blend = [4]float32{}

	s.addGun(f, cl)
	s.addMonsters(f, cl, t)

	torch := 200 + 32*float32(gomath.Sin(float64(t)*4))
	f.AddLight(math.Vec3{-480, -480, 128}, torch, 1, 0.8, 0.5)

	for i := 0; i < 16; i++ {
		z := float32(gomath.Mod(float64(t*32+float32(i)*8), 128))
		f.AddParticle(scene.Particle{
			Origin:     math.Vec3{-480 + float32(i%4)*4, -480 + float32(i/4)*4, 64 + z},
			Color:      0xe0,
			Brightness: 1,
			Alpha:      1 - z/128,
		})
	}

	f.AddLightStyle(0, 1)
	idx := int(t*10) % len(flicker)
	f.AddLightStyle(1, float32(flicker[idx]-'a')/float32('m'-'a'))
}

func (s *Script) addGun(f *scene.Frame, cl *client.State) {
	model := s.gunModel
	frame := int32(0)
	if s.view != nil {
		if m := s.view.GunModel(); m != asset.None {
			model = m
		}
		frame = int32(s.view.GunFrame())
	}

	f.AddEntity(scene.Entity{
		ID:        scene.GunEntityID,
		Model:     model,
		Origin:    cl.View.Origin,
		OldOrigin: cl.View.Origin,
		Angles:    cl.View.Angles,
		Frame:     frame,
		OldFrame:  frame,
		Alpha:     1,
		Scale:     1,
		Flags:     scene.FlagWeaponModel | scene.FlagMinLight | scene.FlagDepthHack,
	})
}

func (s *Script) addMonsters(f *scene.Frame, cl *client.State, t float32) {
	for _, m := range s.monsters {
		ent := scene.Entity{
			ID:        int32(m.Number),
			Model:     s.monsterModel,
			Skin:      s.monsterSkin,
			Origin:    m.Origin,
			OldOrigin: m.Origin,
			Angles:    math.Vec3{0, m.Yaw + m.TurnRate*t, 0},
			Alpha:     1,
			Scale:     1,
		}
		f.AddEntity(ent)

		rec := cl.Entity(m.Number)
		if rec == nil {
			continue
		}
		rec.Current.Number = m.Number
		if !m.Flashlight {
			rec.Current.MoreFX &^= client.EffectFlashlight
			continue
		}
		rec.Current.MoreFX |= client.EffectFlashlight
		if s.view != nil {
			s.view.Flashlight().Add(f, cl, &ent, &rec.Current)
		}
	}
}
