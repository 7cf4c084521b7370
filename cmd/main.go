package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/richinsley/gopong/glfwcontext"
	"github.com/richinsley/gopong/graphics"
	"github.com/richinsley/gopong/graphics/opengl"
	"github.com/richinsley/gopong/inputs"
	"github.com/richinsley/gopong/options"
	"github.com/richinsley/gopong/renderer"
)

func runPong(opts *options.Options) error {
	if err := glfwcontext.Init(); err != nil {
		return err
	}
	defer glfwcontext.Terminate()

	rgba, err := opts.RGBA()
	if err != nil {
		return err
	}
	background := graphics.ClearCommand{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3], Mask: graphics.ClearColorBit}

	gl := opengl.New()
	input := inputs.NewDispatcher(gl, background)

	win, err := glfwcontext.New(opts, input)
	if err != nil {
		return err
	}
	defer win.Shutdown()

	if err := win.InitGraphics(gl); err != nil {
		return err
	}

	r, err := renderer.NewRenderer(gl, win, input, opts)
	if err != nil {
		return err
	}
	defer r.Shutdown()

	log.Println("Starting render loop...")
	return r.Run()
}

func init() {
	runtime.LockOSThread()
}

func main() {
	opts, fs, err := options.Parse("gopong", os.Args[1:], os.Stderr)
	if options.IsHelp(err) {
		return
	}
	if err != nil {
		log.Fatalf("Invalid options: %v", err)
	}
	if *opts.Help {
		fmt.Println("Pong rendering scaffold")
		fs.PrintDefaults()
		return
	}

	if err := runPong(opts); err != nil {
		log.Fatalf("Fatal: %v", err)
	}
}
