package conf

// CompileRule parses one filter expression of the form
//
//	facility['.' ['!'] level ['.' program]] ',' ['-'] output
//
// into a Rule, resolving the output name against the outputs already defined
// in the table. Forward references to outputs defined later in the file are
// rejected.
func (t *Table) CompileRule(expr string) (Rule, error) {
	var rule Rule
	scan := tokenScanner{rest: expr}

	token, sep := scan.next()
	facility, ok := ParseRuleFacility(token)
	if !ok {
		return Rule{}, syntaxError("", "", expr, "facility not parsed: "+quoteToken(token))
	}
	rule.Facility = facility

	if sep == '.' {
		rule.LevelInvert = scan.consume('!')
		token, sep = scan.next()
		level, ok := ParseRuleLevel(token)
		if !ok {
			return Rule{}, syntaxError("", "", expr, "level not parsed: "+quoteToken(token))
		}
		rule.Level = level
	} else {
		rule.Level = -1
	}

	if sep == '.' {
		rule.Program, sep = scan.next()
	}

	if sep != ',' {
		return Rule{}, syntaxError("", "", expr, "expected ',' after filter")
	}

	rule.OmitOutput = scan.consume('-')

	token, sep = scan.next()
	_, index, found := t.FindOutputByName(token)
	if !found {
		return Rule{}, referenceError("", "", expr, "output not recognized: "+quoteToken(token))
	}
	rule.OutputIndex = index

	if sep != 0 {
		return Rule{}, syntaxError("", "", expr, "unexpected data after output")
	}

	return rule, nil
}

func quoteToken(token string) string {
	return "'" + token + "'"
}
