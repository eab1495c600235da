package trajectory

import "sync"

var ctxPool = sync.Pool{
	New: func() any {
		return &stepContext{}
	},
}

func newCtx(s *Simulator, req Request) *stepContext {
	ctx := ctxPool.Get().(*stepContext)
	ctx.sim = s
	ctx.owner = req.Owner
	return ctx
}

func putCtx(ctx *stepContext) {
	ctx.reset()
	ctxPool.Put(ctx)
}

func (ctx *stepContext) reset() {
	ctx.sim = nil
	ctx.owner = 0
	clear(ctx.candidates)
	ctx.candidates = ctx.candidates[:0]
}
