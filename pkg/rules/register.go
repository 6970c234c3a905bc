package rules

func init() {
	Register("closure_parameter_position", func() Rule { return NewClosureParameterPositionRule() })
	Register("line_length", func() Rule { return NewLineLengthRule() })
	Register("trailing_newline", func() Rule { return NewTrailingNewlineRule() })
	Register("trailing_whitespace", func() Rule { return NewTrailingWhitespaceRule() })
}
