package purefn

type pair[O1 any, O2 any] struct {
	O1 O1
	O2 O2
}

// TableizeI1O2 memoizes a pure function of one argument with two results.
func TableizeI1O2[I1 any, O1, O2 any](
	pureFn func(I1) (O1, O2),
	config TableConfig,
) func(I1) (O1, O2) {
	tableized := tableize(
		func(args ...any) pair[O1, O2] {
			v1, v2 := pureFn(argOf[I1](args[0]))
			return pair[O1, O2]{O1: v1, O2: v2}
		},
		config,
	)
	return func(i1 I1) (O1, O2) {
		res := tableized(i1)
		return res.O1, res.O2
	}
}

// TableizeI2O2 memoizes a pure function of two arguments with two results.
func TableizeI2O2[I1, I2 any, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	config TableConfig,
) func(I1, I2) (O1, O2) {
	tableized := tableize(
		func(args ...any) pair[O1, O2] {
			v1, v2 := pureFn(argOf[I1](args[0]), argOf[I2](args[1]))
			return pair[O1, O2]{O1: v1, O2: v2}
		},
		config,
	)
	return func(i1 I1, i2 I2) (O1, O2) {
		res := tableized(i1, i2)
		return res.O1, res.O2
	}
}
