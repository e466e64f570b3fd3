//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-denoise/internal/webdemo"
	"github.com/cwbudde/algo-denoise/session"
)

var (
	engine *webdemo.Engine
	funcs  []js.Func
)

func main() {
	api := js.Global().Get("Object").New()
	api.Set("init", export(func(args []js.Value) any {
		var opts []session.Option
		if len(args) > 0 && args[0].Type() == js.TypeNumber {
			opts = append(opts, session.WithSeed(uint64(args[0].Int())))
		}
		e, err := webdemo.NewEngine(opts...)
		if err != nil {
			return err.Error()
		}
		engine = e
		return viewToJS(e.View())
	}))

	api.Set("params", export(func(args []js.Value) any {
		if engine == nil {
			return js.Null()
		}
		return paramsToJS(engine.Params())
	}))

	api.Set("update", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		v, err := engine.Update(paramsFromJS(args[0]))
		if err != nil {
			return err.Error()
		}
		return viewToJS(v)
	}))

	api.Set("reset", export(func(args []js.Value) any {
		if engine == nil {
			return js.Null()
		}
		v, err := engine.Reset()
		if err != nil {
			return err.Error()
		}
		return viewToJS(v)
	}))

	api.Set("spectrum", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		db, binHz, err := engine.SpectrumDB(args[0].String())
		if err != nil {
			return err.Error()
		}
		out := js.Global().Get("Object").New()
		out.Set("binHz", binHz)
		out.Set("db", float32Array(db))
		return out
	}))

	js.Global().Set("AlgoDenoise", api)
	select {}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}

func paramsFromJS(p js.Value) webdemo.UIParams {
	return webdemo.UIParams{
		Waveform:     p.Get("waveform").String(),
		Amplitude:    p.Get("amplitude").Float(),
		Frequency:    p.Get("frequency").Float(),
		Phase:        p.Get("phase").Float(),
		Mean:         p.Get("mean").Float(),
		Variance:     p.Get("variance").Float(),
		Filter:       p.Get("filter").String(),
		Cutoff:       p.Get("cutoff").Float(),
		Order:        p.Get("order").Int(),
		Window:       p.Get("window").Int(),
		ShowNoise:    p.Get("showNoise").Bool(),
		ShowFiltered: p.Get("showFiltered").Bool(),
	}
}

func paramsToJS(p webdemo.UIParams) js.Value {
	out := js.Global().Get("Object").New()
	out.Set("waveform", p.Waveform)
	out.Set("amplitude", p.Amplitude)
	out.Set("frequency", p.Frequency)
	out.Set("phase", p.Phase)
	out.Set("mean", p.Mean)
	out.Set("variance", p.Variance)
	out.Set("filter", p.Filter)
	out.Set("cutoff", p.Cutoff)
	out.Set("order", p.Order)
	out.Set("window", p.Window)
	out.Set("showNoise", p.ShowNoise)
	out.Set("showFiltered", p.ShowFiltered)
	return out
}

func viewToJS(v webdemo.View) js.Value {
	out := js.Global().Get("Object").New()
	out.Set("time", float32Array(v.Time))
	out.Set("error", v.Error)
	out.Set("errorText", v.ErrorText)
	out.Set("filter", v.Filter)
	out.Set("fellBack", v.FellBack)

	series := js.Global().Get("Array").New(len(v.Series))
	for i, s := range v.Series {
		item := js.Global().Get("Object").New()
		item.Set("name", s.Name)
		item.Set("color", s.Color)
		item.Set("dashed", s.Dashed)
		item.Set("visible", s.Visible)
		item.Set("values", float32Array(s.Values))
		series.SetIndex(i, item)
	}
	out.Set("series", series)
	return out
}

func float32Array(x []float32) js.Value {
	arr := js.Global().Get("Float32Array").New(len(x))
	for i, v := range x {
		arr.SetIndex(i, v)
	}
	return arr
}
