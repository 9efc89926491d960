package shaping

import (
	"context"

	"github.com/emirpasic/gods/lists/arraylist"
	pool "github.com/jolestar/go-commons-pool"
)

// Definition lists are short-lived scratch objects, one per call of Shape.
// To avoid repeated allocation we pool them.
type listPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalListPool *listPool

func init() {
	globalListPool = &listPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return arraylist.New(), nil
		})
	globalListPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalListPool.opool = pool.NewObjectPool(globalListPool.ctx, factory, config)
}

func borrowList() *arraylist.List {
	o, err := globalListPool.opool.BorrowObject(globalListPool.ctx)
	if err != nil {
		tracer().Errorf("shaping: cannot borrow list from pool: %v", err)
		return arraylist.New()
	}
	return o.(*arraylist.List)
}

// releaseList clears a list and puts it back into the pool.
func releaseList(l *arraylist.List) {
	l.Clear()
	_ = globalListPool.opool.ReturnObject(globalListPool.ctx, l)
}
