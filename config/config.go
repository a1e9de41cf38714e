package config

import (
	"sort"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/wondertools/wswantool/errors"
	"github.com/wondertools/wswantool/layout"
	"github.com/wondertools/wswantool/ldscript"
)

// Default ROM bounds when the configuration leaves them out: everything
// above the RAM windows.
const (
	DefaultROMStart  = 0x20000
	DefaultROMLength = 0xE0000
)

// Config is a decoded build configuration.
type Config struct {
	Model     layout.Model
	Regions   []layout.Region
	Constants []ldscript.Constant
	ROMStart  uint32
	ROMLength uint32
}

// Load evaluates a Lua configuration file. The chunk must return a table:
//
//	return {
//		model = "medium",
//		rom = { start = 0x20000, length = 0xE0000 },
//		memory = {
//			c_heap = { 0x10000, 0x1EFFF },
//			stack = { 0x1F000, 0x1FFFF },
//		},
//		constants = { ROM_BANKS = 8 },
//	}
func Load(path string) (*Config, error) {
	L := lua.NewState()
	defer L.Close()
	if err := L.DoFile(path); err != nil {
		return nil, evalError(path, err)
	}
	cfg, err := Decode(L.Get(-1))
	if err != nil {
		return nil, err
	}
	Logger().Debug("loaded build configuration",
		zap.String("path", path),
		zap.String("model", string(cfg.Model)),
		zap.Int("regions", len(cfg.Regions)))
	return cfg, nil
}

// LoadString evaluates a configuration chunk held in memory.
func LoadString(src string) (*Config, error) {
	L := lua.NewState()
	defer L.Close()
	if err := L.DoString(src); err != nil {
		return nil, evalError("config chunk", err)
	}
	return Decode(L.Get(-1))
}

// Decode converts the value returned by a configuration chunk. Region and
// constant tables are sorted by name after traversal, since Lua table
// iteration order is unspecified.
func Decode(v lua.LValue) (*Config, error) {
	root, ok := v.(*lua.LTable)
	if !ok {
		return nil, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Detail("configuration must return a table, got %s", v.Type().String()).
			Build()
	}

	cfg := &Config{
		Model:     layout.ModelSmall,
		ROMStart:  DefaultROMStart,
		ROMLength: DefaultROMLength,
	}

	if mv := root.RawGetString("model"); mv != lua.LNil {
		ms, ok := mv.(lua.LString)
		if !ok {
			return nil, fieldError("model", "string", mv)
		}
		cfg.Model = layout.Model(ms)
	}

	if rv := root.RawGetString("rom"); rv != lua.LNil {
		rom, ok := rv.(*lua.LTable)
		if !ok {
			return nil, fieldError("rom", "table", rv)
		}
		if sv := rom.RawGetString("start"); sv != lua.LNil {
			n, ok := asUint32(sv)
			if !ok {
				return nil, fieldError("rom.start", "address", sv)
			}
			cfg.ROMStart = n
		}
		if lv := rom.RawGetString("length"); lv != lua.LNil {
			n, ok := asUint32(lv)
			if !ok {
				return nil, fieldError("rom.length", "length", lv)
			}
			cfg.ROMLength = n
		}
	}

	if mv := root.RawGetString("memory"); mv != lua.LNil {
		mem, ok := mv.(*lua.LTable)
		if !ok {
			return nil, fieldError("memory", "table", mv)
		}
		var decodeErr error
		mem.ForEach(func(k, v lua.LValue) {
			if decodeErr != nil {
				return
			}
			name, ok := k.(lua.LString)
			if !ok {
				decodeErr = fieldError("memory key", "string", k)
				return
			}
			r, err := decodeRegion(string(name), v)
			if err != nil {
				decodeErr = err
				return
			}
			cfg.Regions = append(cfg.Regions, r)
		})
		if decodeErr != nil {
			return nil, decodeErr
		}
		sort.Slice(cfg.Regions, func(i, j int) bool { return cfg.Regions[i].Name < cfg.Regions[j].Name })
	}

	if cv := root.RawGetString("constants"); cv != lua.LNil {
		consts, ok := cv.(*lua.LTable)
		if !ok {
			return nil, fieldError("constants", "table", cv)
		}
		var decodeErr error
		consts.ForEach(func(k, v lua.LValue) {
			if decodeErr != nil {
				return
			}
			name, ok := k.(lua.LString)
			if !ok {
				decodeErr = fieldError("constants key", "string", k)
				return
			}
			cfg.Constants = append(cfg.Constants, ldscript.Constant{
				Name:  string(name),
				Value: goValue(v),
			})
		})
		if decodeErr != nil {
			return nil, decodeErr
		}
		sort.Slice(cfg.Constants, func(i, j int) bool { return cfg.Constants[i].Name < cfg.Constants[j].Name })
	}

	return cfg, nil
}

// decodeRegion reads a {start, end} pair.
func decodeRegion(name string, v lua.LValue) (layout.Region, error) {
	tbl, ok := v.(*lua.LTable)
	if !ok {
		return layout.Region{}, fieldError("memory."+name, "table", v)
	}
	start, ok := asUint32(tbl.RawGetInt(1))
	if !ok {
		return layout.Region{}, fieldError("memory."+name+"[1]", "address", tbl.RawGetInt(1))
	}
	end, ok := asUint32(tbl.RawGetInt(2))
	if !ok {
		return layout.Region{}, fieldError("memory."+name+"[2]", "address", tbl.RawGetInt(2))
	}
	return layout.Region{Name: name, Start: start, End: end}, nil
}

// goValue mirrors a Lua scalar into Go. Non-numbers pass through as their
// native Go shape so the emitter can report the exact offending type.
func goValue(v lua.LValue) any {
	switch x := v.(type) {
	case lua.LNumber:
		return float64(x)
	case lua.LString:
		return string(x)
	case lua.LBool:
		return bool(x)
	}
	return v.String()
}

func asUint32(v lua.LValue) (uint32, bool) {
	n, ok := v.(lua.LNumber)
	if !ok {
		return 0, false
	}
	f := float64(n)
	if f != float64(int64(f)) || f < 0 || f > 0xFFFFFFFF {
		return 0, false
	}
	return uint32(f), true
}

func fieldError(field, want string, got lua.LValue) error {
	return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
		Detail("%s must be a %s, got %s", field, want, got.Type().String()).
		Build()
}

func evalError(what string, err error) error {
	return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
		Detail("evaluate %s", what).
		Cause(err).
		Build()
}
