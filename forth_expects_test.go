package main

// @generated from forth_test.go

//go:generate go run scripts/gen_forth_expects.go -- forth_test.go forth_expects_test.go

func withForthOptions(opts ...Option) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.withOptions(opts...)
	}
}

func withForthStack(values ...int) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.withStack(values...)
	}
}

func expectForthResponses(resps ...string) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.expectResponses(resps...)
	}
}

func expectForthLastResponse(resp string) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.expectLastResponse(resp)
	}
}

func expectForthStack(values ...int) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.expectStack(values...)
	}
}

func expectForthDisplay(display string) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.expectDisplay(display)
	}
}

func expectForthInDefinition(in bool) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.expectInDefinition(in)
	}
}

func expectForthDump(dump string) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.expectDump(dump)
	}
}

func expectForthFault(mess string) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.expectFault(mess)
	}
}
