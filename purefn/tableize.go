package purefn

// TableizeI1O1 memoizes a pure function of one argument.
func TableizeI1O1[I1 any, O1 any](
	pureFn func(I1) O1,
	config TableConfig,
) func(I1) O1 {
	tableized := tableize(
		func(args ...any) O1 {
			return pureFn(argOf[I1](args[0]))
		},
		config,
	)
	return func(i1 I1) O1 {
		return tableized(i1)
	}
}

// TableizeI2O1 memoizes a pure function of two arguments.
func TableizeI2O1[I1, I2 any, O1 any](
	pureFn func(I1, I2) O1,
	config TableConfig,
) func(I1, I2) O1 {
	tableized := tableize(
		func(args ...any) O1 {
			return pureFn(argOf[I1](args[0]), argOf[I2](args[1]))
		},
		config,
	)
	return func(i1 I1, i2 I2) O1 {
		return tableized(i1, i2)
	}
}

// argOf recovers a typed argument; a nil interface argument becomes the zero value.
func argOf[I any](arg any) I {
	v, _ := arg.(I)
	return v
}
