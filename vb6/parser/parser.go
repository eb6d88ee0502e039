package parser

import "sort"

type Option func(*Parser)

// WithMaxDepth bounds statement and expression nesting. Inputs that exceed
// the limit produce an Error node and an exhaustion diagnostic instead of
// overflowing the stack.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

const defaultMaxDepth = 512

// Parser builds a lossless tree from the token stream. It never stops on
// bad input: unparseable stretches become Error nodes that still hold every
// skipped token, and each problem lands in the diagnostics list.
type Parser struct {
	tokens   []Token
	pos      int
	diags    []Diagnostic
	maxDepth int
	depth    int
}

func NewParser(tokens []Token, opts ...Option) *Parser {
	p := &Parser{
		tokens:   tokens,
		maxDepth: defaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Diagnostics returns the structural and exhaustion diagnostics collected
// so far, in source order.
func (p *Parser) Diagnostics() []Diagnostic {
	return p.diags
}

func (p *Parser) errorAt(pos Position, category DiagnosticCategory, msg string) {
	p.diags = append(p.diags, Diagnostic{Pos: pos, Category: category, Message: msg})
}

// isCursorTrivia reports whether the cursor skips this kind when looking
// for the next significant token. Newlines are NOT skipped: they terminate
// statements. Line continuations are skipped, which is what lets a logical
// line span physical lines.
func isCursorTrivia(kind SyntaxKind) bool {
	switch kind {
	case TokenWhitespace, TokenComment, TokenRemComment, TokenLineContinuation:
		return true
	}
	return false
}

// sigIndex returns the token index of the n-th significant token at or
// after the cursor.
func (p *Parser) sigIndex(n int) int {
	i := p.pos
	for {
		for i < len(p.tokens) && isCursorTrivia(p.tokens[i].Kind) {
			i++
		}
		if n == 0 || i >= len(p.tokens) {
			return i
		}
		n--
		i++
	}
}

func (p *Parser) peek() Token {
	i := p.sigIndex(0)
	if i >= len(p.tokens) {
		return Token{Kind: TokenEOF}
	}
	return p.tokens[i]
}

func (p *Parser) peekN(n int) Token {
	i := p.sigIndex(n)
	if i >= len(p.tokens) {
		return Token{Kind: TokenEOF}
	}
	return p.tokens[i]
}

func (p *Parser) check(kind SyntaxKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...SyntaxKind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			return true
		}
	}
	return false
}

func leaf(tok Token) *Node {
	t := tok
	return &Node{Kind: tok.Kind, Span: tok.Span, Token: &t}
}

// flushTrivia moves pending trivia tokens into n as leaf children.
func (p *Parser) flushTrivia(n *Node) {
	for p.pos < len(p.tokens) && isCursorTrivia(p.tokens[p.pos].Kind) {
		n.AddChild(leaf(p.tokens[p.pos]))
		p.pos++
	}
}

// bump attaches pending trivia and the next significant token to n and
// advances past them. Every consumed token becomes a leaf, so no text is
// ever dropped.
func (p *Parser) bump(n *Node) {
	p.flushTrivia(n)
	if p.pos >= len(p.tokens) || p.tokens[p.pos].Kind == TokenEOF {
		return
	}
	n.AddChild(leaf(p.tokens[p.pos]))
	p.pos++
}

// expect bumps a token of the given kind, or records a structural
// diagnostic without consuming anything.
func (p *Parser) expect(n *Node, kind SyntaxKind) bool {
	if p.check(kind) {
		p.bump(n)
		return true
	}
	tok := p.peek()
	p.errorAt(tok.Span.Start, DiagStructural, "expected "+kind.String()+", found "+tok.Kind.String())
	return false
}

func (p *Parser) startNode(kind SyntaxKind) *Node {
	return &Node{
		Kind: kind,
		Span: Span{Start: p.peek().Span.Start},
	}
}

func (p *Parser) finishNode(n *Node) *Node {
	if len(n.Children) > 0 {
		n.Span.Start = n.Children[0].Span.Start
		n.Span.End = n.Children[len(n.Children)-1].Span.End
	} else {
		n.Span.End = n.Span.Start
	}
	return n
}

// atLineEnd reports whether the next significant token terminates the
// current logical line. Colons separate statements on one physical line and
// count as terminators.
func (p *Parser) atLineEnd() bool {
	return p.match(TokenNewline, TokenColon, TokenEOF)
}

// endOfLine consumes the logical line terminator into n. Stray tokens
// before the terminator become an Error node child with one diagnostic.
// At a block boundary the statement ends without a terminator of its own:
// the token belongs to the enclosing block, which already reported the
// missing terminator.
func (p *Parser) endOfLine(n *Node) {
	if p.atBlockBoundary() {
		p.finishNode(n)
		return
	}
	if !p.atLineEnd() {
		n.AddChild(p.errorNode("expected end of statement"))
	}
	if p.check(TokenEOF) {
		p.flushTrivia(n)
		p.finishNode(n)
		return
	}
	if p.match(TokenNewline, TokenColon) {
		p.bump(n)
	}
	p.finishNode(n)
}

// errorNode records a structural diagnostic and swallows the rest of the
// logical line into an Error node, keeping every skipped token in the tree.
func (p *Parser) errorNode(msg string, expected ...SyntaxKind) *Node {
	tok := p.peek()
	p.errorAt(tok.Span.Start, DiagStructural, msg+", found "+tok.Kind.String())
	node := &Node{
		Kind: KindError,
		Span: Span{Start: tok.Span.Start, End: tok.Span.End},
		Error: &Error{
			Message:  msg,
			Expected: expected,
			Got:      &tok,
		},
	}
	for !p.atLineEnd() {
		p.bump(node)
	}
	return p.finishNode(node)
}

// mustProgress guards loops against getting stuck. Call it at the top of an
// iteration; the returned function reports whether the cursor moved and, if
// it did not, force-bumps one token into n so the loop can go on.
func (p *Parser) mustProgress(n *Node) func() bool {
	saved := p.pos
	return func() bool {
		if p.pos == saved {
			if !p.check(TokenEOF) {
				p.bump(n)
			}
			return false
		}
		return true
	}
}

func (p *Parser) enter() bool {
	p.depth++
	return p.depth <= p.maxDepth
}

func (p *Parser) leave() {
	p.depth--
}

// exhaustedNode reports that the nesting limit was hit and consumes the
// rest of the line so the recursion can unwind.
func (p *Parser) exhaustedNode() *Node {
	tok := p.peek()
	p.errorAt(tok.Span.Start, DiagExhaustion, "nesting exceeds the configured depth limit")
	node := &Node{
		Kind:  KindError,
		Span:  Span{Start: tok.Span.Start, End: tok.Span.End},
		Error: &Error{Message: "nesting exceeds the configured depth limit", Got: &tok},
	}
	for !p.atLineEnd() {
		p.bump(node)
	}
	return p.finishNode(node)
}

// ParseRoot consumes the whole token stream into one Root node.
func (p *Parser) ParseRoot() *Node {
	root := p.startNode(KindRoot)
	for !p.check(TokenEOF) {
		progress := p.mustProgress(root)
		if p.match(TokenNewline, TokenColon) {
			p.bump(root)
			continue
		}
		root.AddChild(p.parseStatement())
		progress()
	}
	p.flushTrivia(root)
	p.sortDiagnostics()
	return p.finishNode(root)
}

func (p *Parser) sortDiagnostics() {
	sort.SliceStable(p.diags, func(i, j int) bool {
		return p.diags[i].Pos.Offset < p.diags[j].Pos.Offset
	})
}

// parseStatement handles one statement starting at the current logical
// line, terminator included. Dispatch is on the first significant token.
func (p *Parser) parseStatement() *Node {
	if !p.enter() {
		p.leave()
		node := p.exhaustedNode()
		p.endOfLine(node)
		return node
	}
	defer p.leave()

	switch p.peek().Kind {
	case TokenIdentifier:
		if p.atLabel() {
			return p.parseLabel()
		}
	case TokenIntegerLiteral, TokenLongLiteral:
		if p.peek().Span.Start.Column == 1 {
			return p.parseLabel()
		}
	}

	var node *Node
	switch p.peek().Kind {
	case TokenIf:
		node = p.parseIf()
	case TokenFor:
		node = p.parseFor()
	case TokenDo:
		node = p.parseDo()
	case TokenWhile:
		node = p.parseWhile()
	case TokenSelect:
		node = p.parseSelectCase()
	case TokenWith:
		node = p.parseWith()
	case TokenSub, TokenFunction, TokenProperty:
		node = p.parseProcedure()
	case TokenType:
		node = p.parseTypeBlock()
	case TokenEnum:
		node = p.parseEnumBlock()
	case TokenPublic, TokenPrivate, TokenFriend, TokenStatic:
		node = p.parseModifiedStatement()
	case TokenBegin:
		node = p.parsePropertiesBlock()
	case TokenVersion:
		node = p.parseVersion()
	case TokenObject:
		node = p.parseObjectLine()
	default:
		node = p.parseSimpleStatement()
	}
	p.endOfLine(node)
	return node
}

// parseModifiedStatement resolves lines starting with an access or Static
// modifier by looking at the second significant token.
func (p *Parser) parseModifiedStatement() *Node {
	n := 1
	for p.peekN(n).Kind == TokenPublic || p.peekN(n).Kind == TokenPrivate ||
		p.peekN(n).Kind == TokenFriend || p.peekN(n).Kind == TokenStatic {
		n++
	}
	switch p.peekN(n).Kind {
	case TokenSub, TokenFunction, TokenProperty:
		return p.parseProcedure()
	case TokenDeclare:
		return p.parseDeclare()
	case TokenConst:
		return p.parseConst()
	case TokenType:
		return p.parseTypeBlock()
	case TokenEnum:
		return p.parseEnumBlock()
	case TokenEvent:
		return p.parseEvent()
	default:
		return p.parseDim()
	}
}

// parseSimpleStatement handles the statements legal inside a single-line If
// as well. It never consumes the line terminator.
func (p *Parser) parseSimpleStatement() *Node {
	switch p.peek().Kind {
	case TokenIf:
		return p.parseIf()
	case TokenDim:
		return p.parseDim()
	case TokenConst:
		return p.parseConst()
	case TokenReDim:
		return p.parseReDim()
	case TokenErase:
		return p.parseErase()
	case TokenDeclare:
		return p.parseDeclare()
	case TokenEvent:
		return p.parseEvent()
	case TokenImplements:
		return p.parseImplements()
	case TokenDefBool, TokenDefByte, TokenDefCur, TokenDefDate, TokenDefDbl,
		TokenDefDec, TokenDefInt, TokenDefLng, TokenDefObj, TokenDefSng,
		TokenDefStr, TokenDefVar:
		return p.parseDefType()
	case TokenOption:
		return p.parseOption()
	case TokenAttribute:
		return p.parseAttribute()
	case TokenCall:
		return p.parseCall()
	case TokenSet:
		return p.parseSetOrLet(KindSetStatement)
	case TokenLet:
		return p.parseSetOrLet(KindLetStatement)
	case TokenRaiseEvent:
		return p.parseRaiseEvent()
	case TokenGoTo:
		return p.parseJump(KindGotoStatement)
	case TokenGoSub:
		return p.parseJump(KindGoSubStatement)
	case TokenReturn:
		return p.parseReturn()
	case TokenResume:
		return p.parseResume()
	case TokenExit:
		return p.parseExit()
	case TokenOn:
		return p.parseOn()
	case TokenStop:
		return p.parseBuiltin(KindStopStatement)
	case TokenEnd:
		return p.parseEnd()
	case TokenLSet:
		return p.parseTargetAssignment(KindLSetStatement)
	case TokenRSet:
		return p.parseTargetAssignment(KindRSetStatement)
	case TokenMid, TokenMidB:
		return p.parseMidStatement()
	case TokenLine:
		if p.peekN(1).Kind == TokenInput {
			return p.parseBuiltin(KindLineInputStatement)
		}
		return p.parseBuiltin(KindLineStatement)
	case TokenIdentifier, TokenMe, TokenDot:
		if p.isAtAssignment() {
			return p.parseAssignment()
		}
		return p.parseExpressionStatement()
	}

	if kind, ok := builtinStatements[p.peek().Kind]; ok {
		return p.parseBuiltin(kind)
	}

	return p.errorNode("expected statement")
}

// builtinStatements maps a command keyword to its statement kind. All of
// them share one grammar rule: the keyword followed by whatever argument
// expressions sit on the rest of the line.
var builtinStatements = map[SyntaxKind]SyntaxKind{
	TokenAppActivate:   KindAppActivateStatement,
	TokenBeep:          KindBeepStatement,
	TokenChDir:         KindChDirStatement,
	TokenChDrive:       KindChDriveStatement,
	TokenClose:         KindCloseStatement,
	TokenDate:          KindDateStatement,
	TokenDeleteSetting: KindDeleteSettingStatement,
	TokenError:         KindErrorStatement,
	TokenFileCopy:      KindFileCopyStatement,
	TokenGet:           KindGetStatement,
	TokenInput:         KindInputStatement,
	TokenKill:          KindKillStatement,
	TokenLoad:          KindLoadStatement,
	TokenLock:          KindLockStatement,
	TokenMkDir:         KindMkDirStatement,
	TokenName:          KindNameStatement,
	TokenOpen:          KindOpenStatement,
	TokenPrint:         KindPrintStatement,
	TokenPut:           KindPutStatement,
	TokenRandomize:     KindRandomizeStatement,
	TokenReset:         KindResetStatement,
	TokenRmDir:         KindRmDirStatement,
	TokenSavePicture:   KindSavePictureStatement,
	TokenSaveSetting:   KindSaveSettingStatement,
	TokenSeek:          KindSeekStatement,
	TokenSendKeys:      KindSendKeysStatement,
	TokenSetAttr:       KindSetAttrStatement,
	TokenStop:          KindStopStatement,
	TokenTime:          KindTimeStatement,
	TokenUnload:        KindUnloadStatement,
	TokenUnlock:        KindUnlockStatement,
	TokenWidth:         KindWidthStatement,
	TokenWrite:         KindWriteStatement,
}

// parseBuiltin wraps a command keyword and its argument soup. Tokens that
// cannot start an expression (file number marks, mode keywords and the
// like) are kept as plain leaves; everything else parses as an expression.
func (p *Parser) parseBuiltin(kind SyntaxKind) *Node {
	node := p.startNode(kind)
	p.bump(node)
	for !p.atLineEnd() {
		progress := p.mustProgress(node)
		if p.startsExpression() {
			node.AddChild(p.parseExpression())
		} else {
			p.bump(node)
		}
		if !progress() {
			break
		}
	}
	return p.finishNode(node)
}

// atLabel reports whether the cursor sits on a `name:` label. Labels must
// start in the first column; anywhere else `name: x = 1` is a call followed
// by a statement separator.
func (p *Parser) atLabel() bool {
	return p.peek().Span.Start.Column == 1 && p.peekN(1).Kind == TokenColon
}

func (p *Parser) parseLabel() *Node {
	node := p.startNode(KindLabelStatement)
	p.bump(node)
	if p.check(TokenColon) {
		p.bump(node)
	}
	return p.finishNode(node)
}

// isAtAssignment scans ahead on the logical line for a top-level `=`,
// giving up at the first token that cannot sit in an assignment target.
// `MsgBox "m", x = 1` is a call, not an assignment.
func (p *Parser) isAtAssignment() bool {
	depth := 0
	atStart := true
	lastWasAccess := false
	for i := p.pos; i < len(p.tokens); i++ {
		tok := p.tokens[i]
		switch tok.Kind {
		case TokenWhitespace, TokenLineContinuation:
			continue
		case TokenComment, TokenRemComment, TokenNewline, TokenEOF:
			return false
		}
		if depth > 0 {
			// Subscripts on the target may hold arbitrary expressions.
			switch tok.Kind {
			case TokenLParen:
				depth++
			case TokenRParen:
				depth--
			}
			continue
		}
		switch tok.Kind {
		case TokenEQ:
			return true
		case TokenLParen:
			depth++
		case TokenDot:
			lastWasAccess = true
			atStart = false
			continue
		case TokenBang:
			// Bang is member access only when glued to the target.
			if i == p.pos || p.tokens[i-1].Span.End.Offset != tok.Span.Start.Offset {
				return false
			}
			lastWasAccess = true
			atStart = false
			continue
		case TokenPercent, TokenAmpersand, TokenOctothorpe, TokenDollar, TokenAt:
			// Type suffixes count only when glued to the name.
			if i == p.pos || p.tokens[i-1].Kind != TokenIdentifier ||
				p.tokens[i-1].Span.End.Offset != tok.Span.Start.Offset {
				return false
			}
		case TokenIdentifier, TokenRParen,
			TokenIntegerLiteral, TokenLongLiteral, TokenSingleLiteral,
			TokenDoubleLiteral, TokenDecimalLiteral:
		default:
			// Keywords name members after `.` and variables at the start
			// of the statement; anywhere else they end the target.
			if !tok.Kind.IsKeyword() || !(atStart || lastWasAccess) {
				return false
			}
		}
		atStart = false
		lastWasAccess = false
	}
	return false
}

func (p *Parser) parseAssignment() *Node {
	node := p.startNode(KindAssignmentStatement)
	node.AddChild(p.parsePostfixExpression())
	p.expect(node, TokenEQ)
	node.AddChild(p.parseExpression())
	return p.finishNode(node)
}

// parseExpressionStatement covers bare procedure calls, with or without an
// unparenthesized argument list: `Form1.Show` or `MsgBox "hi", vbOKOnly`.
func (p *Parser) parseExpressionStatement() *Node {
	node := p.startNode(KindExpressionStatement)
	node.AddChild(p.parsePostfixExpression())
	if p.atLineEnd() {
		return p.finishNode(node)
	}
	args := p.startNode(KindArgumentList)
	for !p.atLineEnd() {
		progress := p.mustProgress(args)
		if p.match(TokenComma, TokenSemicolon) {
			p.bump(args)
			continue
		}
		if p.startsExpression() {
			args.AddChild(p.parseArgument())
		} else {
			args.AddChild(p.errorNode("expected argument"))
		}
		if !progress() {
			break
		}
	}
	node.AddChild(p.finishNode(args))
	return p.finishNode(node)
}

func (p *Parser) parseCall() *Node {
	node := p.startNode(KindCallStatement)
	p.bump(node)
	node.AddChild(p.parsePostfixExpression())
	return p.finishNode(node)
}

func (p *Parser) parseSetOrLet(kind SyntaxKind) *Node {
	node := p.startNode(kind)
	p.bump(node)
	node.AddChild(p.parsePostfixExpression())
	p.expect(node, TokenEQ)
	node.AddChild(p.parseExpression())
	return p.finishNode(node)
}

// parseTargetAssignment handles LSet and RSet, which assign through a
// keyword instead of a plain target.
func (p *Parser) parseTargetAssignment(kind SyntaxKind) *Node {
	node := p.startNode(kind)
	p.bump(node)
	node.AddChild(p.parsePostfixExpression())
	p.expect(node, TokenEQ)
	node.AddChild(p.parseExpression())
	return p.finishNode(node)
}

// parseMidStatement handles the assignment form `Mid(s, 1, 2) = "ab"`.
func (p *Parser) parseMidStatement() *Node {
	node := p.startNode(KindMidStatement)
	p.bump(node)
	if p.check(TokenLParen) {
		node.AddChild(p.parseArgumentList())
	}
	p.expect(node, TokenEQ)
	node.AddChild(p.parseExpression())
	return p.finishNode(node)
}

func (p *Parser) parseRaiseEvent() *Node {
	node := p.startNode(KindRaiseEventStatement)
	p.bump(node)
	node.AddChild(p.parsePostfixExpression())
	return p.finishNode(node)
}

func (p *Parser) parseJump(kind SyntaxKind) *Node {
	node := p.startNode(kind)
	p.bump(node)
	if p.match(TokenIdentifier, TokenIntegerLiteral, TokenLongLiteral) {
		p.bump(node)
	}
	return p.finishNode(node)
}

func (p *Parser) parseReturn() *Node {
	node := p.startNode(KindReturnStatement)
	p.bump(node)
	return p.finishNode(node)
}

func (p *Parser) parseResume() *Node {
	node := p.startNode(KindResumeStatement)
	p.bump(node)
	if p.match(TokenNext, TokenIdentifier, TokenIntegerLiteral, TokenLongLiteral) {
		p.bump(node)
	}
	return p.finishNode(node)
}

func (p *Parser) parseExit() *Node {
	node := p.startNode(KindExitStatement)
	p.bump(node)
	if p.match(TokenSub, TokenFunction, TokenProperty, TokenFor, TokenDo) {
		p.bump(node)
	} else {
		node.AddChild(p.errorNode("expected Sub, Function, Property, For, or Do after Exit"))
	}
	return p.finishNode(node)
}

// parseOn splits `On Error ...` from the computed `On expr GoTo ...` form.
func (p *Parser) parseOn() *Node {
	if p.peekN(1).Kind == TokenError {
		node := p.startNode(KindOnErrorStatement)
		p.bump(node)
		p.bump(node)
		switch p.peek().Kind {
		case TokenGoTo:
			p.bump(node)
			if p.match(TokenIdentifier, TokenIntegerLiteral, TokenLongLiteral) {
				p.bump(node)
			} else {
				node.AddChild(p.errorNode("expected label after On Error GoTo"))
			}
		case TokenResume:
			p.bump(node)
			p.expect(node, TokenNext)
		default:
			node.AddChild(p.errorNode("expected GoTo or Resume after On Error"))
		}
		return p.finishNode(node)
	}

	node := p.startNode(KindOnGotoStatement)
	p.bump(node)
	node.AddChild(p.parseExpression())
	if p.match(TokenGoTo, TokenGoSub) {
		p.bump(node)
	} else {
		node.AddChild(p.errorNode("expected GoTo or GoSub"))
		return p.finishNode(node)
	}
	for {
		if p.match(TokenIdentifier, TokenIntegerLiteral, TokenLongLiteral) {
			p.bump(node)
		}
		if !p.check(TokenComma) {
			break
		}
		p.bump(node)
	}
	return p.finishNode(node)
}

// parseEnd handles the bare `End` statement. A dangling block terminator
// like `End If` with no open block is an error here.
func (p *Parser) parseEnd() *Node {
	switch p.peekN(1).Kind {
	case TokenIf, TokenSub, TokenFunction, TokenProperty, TokenSelect,
		TokenWith, TokenType, TokenEnum:
		return p.errorNode("unexpected block terminator")
	}
	node := p.startNode(KindEndStatement)
	p.bump(node)
	return p.finishNode(node)
}

// --- declarations ---

func (p *Parser) parseDim() *Node {
	node := p.startNode(KindDimStatement)
	for p.match(TokenDim, TokenPublic, TokenPrivate, TokenFriend, TokenStatic) {
		p.bump(node)
	}
	p.parseVariableList(node)
	return p.finishNode(node)
}

// parseVariableList consumes `name[()] [As [New] type]` entries separated
// by commas, shared by Dim, ReDim, and Type members.
func (p *Parser) parseVariableList(node *Node) {
	for {
		progress := p.mustProgress(node)
		if p.check(TokenWithEvents) {
			p.bump(node)
		}
		if !p.check(TokenIdentifier) {
			node.AddChild(p.errorNode("expected variable name"))
			return
		}
		p.bump(node)
		p.bumpTypeSuffix(node)
		if p.check(TokenLParen) {
			p.parseSubscripts(node)
		}
		if p.check(TokenAs) {
			p.parseAsClause(node)
		}
		if !p.check(TokenComma) {
			_ = progress()
			return
		}
		p.bump(node)
		if !progress() {
			return
		}
	}
}

// parseSubscripts consumes an array bounds list: `(10)`, `(1 To 5, 0 To 9)`
// or the empty `()` of a dynamic array.
func (p *Parser) parseSubscripts(node *Node) {
	p.bump(node)
	for !p.check(TokenRParen) && !p.atLineEnd() {
		progress := p.mustProgress(node)
		if p.check(TokenComma) {
			p.bump(node)
			continue
		}
		node.AddChild(p.parseExpression())
		if p.check(TokenTo) {
			p.bump(node)
			node.AddChild(p.parseExpression())
		}
		if !progress() {
			break
		}
	}
	p.expect(node, TokenRParen)
}

// parseAsClause consumes `As [New] type [* length]` into the parent node.
func (p *Parser) parseAsClause(node *Node) {
	p.bump(node)
	if p.check(TokenNew) {
		p.bump(node)
	}
	p.parseTypeName(node)
	if p.check(TokenStar) {
		p.bump(node)
		node.AddChild(p.parseExpression())
	}
}

var typeKeywords = []SyntaxKind{
	TokenBoolean, TokenByte, TokenInteger, TokenLong, TokenSingle,
	TokenDouble, TokenCurrency, TokenDecimal, TokenDate, TokenString,
	TokenObject, TokenVariant, TokenAny,
}

func (p *Parser) parseTypeName(node *Node) {
	if p.match(typeKeywords...) {
		p.bump(node)
		return
	}
	if !p.check(TokenIdentifier) {
		node.AddChild(p.errorNode("expected type name"))
		return
	}
	p.bump(node)
	for p.check(TokenDot) {
		p.bump(node)
		if p.check(TokenIdentifier) || p.peek().Kind.IsKeyword() {
			p.bump(node)
		} else {
			node.AddChild(p.errorNode("expected name after ."))
			return
		}
	}
}

// bumpTypeSuffix consumes a type suffix character glued to the preceding
// name, as in `count&` or `name$`. The check is on the raw cursor so a
// spaced-out operator is never mistaken for a suffix.
func (p *Parser) bumpTypeSuffix(node *Node) {
	if p.pos >= len(p.tokens) {
		return
	}
	switch p.tokens[p.pos].Kind {
	case TokenPercent, TokenAmpersand, TokenBang, TokenOctothorpe, TokenAt, TokenDollar:
		node.AddChild(leaf(p.tokens[p.pos]))
		p.pos++
	}
}

func (p *Parser) parseConst() *Node {
	node := p.startNode(KindConstStatement)
	for p.match(TokenPublic, TokenPrivate, TokenFriend, TokenConst) {
		p.bump(node)
	}
	for {
		progress := p.mustProgress(node)
		if !p.check(TokenIdentifier) {
			node.AddChild(p.errorNode("expected constant name"))
			return p.finishNode(node)
		}
		p.bump(node)
		p.bumpTypeSuffix(node)
		if p.check(TokenAs) {
			p.parseAsClause(node)
		}
		p.expect(node, TokenEQ)
		node.AddChild(p.parseExpression())
		if !p.check(TokenComma) {
			_ = progress()
			break
		}
		p.bump(node)
		if !progress() {
			break
		}
	}
	return p.finishNode(node)
}

func (p *Parser) parseReDim() *Node {
	node := p.startNode(KindReDimStatement)
	p.bump(node)
	if p.check(TokenPreserve) {
		p.bump(node)
	}
	p.parseVariableList(node)
	return p.finishNode(node)
}

func (p *Parser) parseErase() *Node {
	node := p.startNode(KindEraseStatement)
	p.bump(node)
	for {
		node.AddChild(p.parsePostfixExpression())
		if !p.check(TokenComma) {
			break
		}
		p.bump(node)
	}
	return p.finishNode(node)
}

func (p *Parser) parseDeclare() *Node {
	node := p.startNode(KindDeclareStatement)
	for p.match(TokenPublic, TokenPrivate) {
		p.bump(node)
	}
	p.expect(node, TokenDeclare)
	if p.match(TokenSub, TokenFunction) {
		p.bump(node)
	} else {
		node.AddChild(p.errorNode("expected Sub or Function after Declare"))
		return p.finishNode(node)
	}
	if p.check(TokenIdentifier) {
		p.bump(node)
		p.bumpTypeSuffix(node)
	} else {
		node.AddChild(p.errorNode("expected procedure name"))
	}
	if p.check(TokenLib) {
		p.bump(node)
		p.expect(node, TokenStringLiteral)
	}
	if p.check(TokenAlias) {
		p.bump(node)
		p.expect(node, TokenStringLiteral)
	}
	if p.check(TokenLParen) {
		node.AddChild(p.parseParameterList())
	}
	if p.check(TokenAs) {
		p.parseAsClause(node)
	}
	return p.finishNode(node)
}

func (p *Parser) parseEvent() *Node {
	node := p.startNode(KindEventStatement)
	for p.match(TokenPublic, TokenPrivate) {
		p.bump(node)
	}
	p.expect(node, TokenEvent)
	if p.check(TokenIdentifier) {
		p.bump(node)
	} else {
		node.AddChild(p.errorNode("expected event name"))
	}
	if p.check(TokenLParen) {
		node.AddChild(p.parseParameterList())
	}
	return p.finishNode(node)
}

func (p *Parser) parseImplements() *Node {
	node := p.startNode(KindImplementsStatement)
	p.bump(node)
	p.parseTypeName(node)
	return p.finishNode(node)
}

// parseDefType handles the DefInt A-Z family. The letter ranges are kept as
// plain leaves.
func (p *Parser) parseDefType() *Node {
	node := p.startNode(KindDefTypeStatement)
	p.bump(node)
	for !p.atLineEnd() {
		progress := p.mustProgress(node)
		p.bump(node)
		if !progress() {
			break
		}
	}
	return p.finishNode(node)
}

func (p *Parser) parseOption() *Node {
	node := p.startNode(KindOptionStatement)
	p.bump(node)
	for !p.atLineEnd() {
		progress := p.mustProgress(node)
		p.bump(node)
		if !progress() {
			break
		}
	}
	return p.finishNode(node)
}

func (p *Parser) parseAttribute() *Node {
	node := p.startNode(KindAttributeStatement)
	p.bump(node)
	if p.check(TokenIdentifier) {
		p.bump(node)
		for p.check(TokenDot) {
			p.bump(node)
			if p.check(TokenIdentifier) || p.peek().Kind.IsKeyword() {
				p.bump(node)
			}
		}
	} else {
		node.AddChild(p.errorNode("expected attribute name"))
		return p.finishNode(node)
	}
	if p.check(TokenEQ) {
		p.bump(node)
		for {
			node.AddChild(p.parseExpression())
			if !p.check(TokenComma) {
				break
			}
			p.bump(node)
		}
	}
	return p.finishNode(node)
}

// --- header statements for .cls and .frm modules ---

func (p *Parser) parseVersion() *Node {
	node := p.startNode(KindVersionStatement)
	p.bump(node)
	for !p.atLineEnd() {
		progress := p.mustProgress(node)
		p.bump(node)
		if !progress() {
			break
		}
	}
	return p.finishNode(node)
}

func (p *Parser) parseObjectLine() *Node {
	node := p.startNode(KindObjectStatement)
	p.bump(node)
	for !p.atLineEnd() {
		progress := p.mustProgress(node)
		p.bump(node)
		if !progress() {
			break
		}
	}
	return p.finishNode(node)
}

// parsePropertiesBlock consumes a designer `Begin ... End` block. Property
// lines are kept verbatim; nested Begin blocks recurse.
func (p *Parser) parsePropertiesBlock() *Node {
	node := p.startNode(KindPropertiesBlock)
	p.bump(node)
	for !p.atLineEnd() {
		progress := p.mustProgress(node)
		p.bump(node)
		if !progress() {
			break
		}
	}
	p.endOfLine(node)

	terminated := false
	for !p.check(TokenEOF) {
		progress := p.mustProgress(node)
		if p.match(TokenNewline, TokenColon) {
			p.bump(node)
			continue
		}
		if p.check(TokenEnd) && (p.peekN(1).Kind == TokenNewline || p.peekN(1).Kind == TokenEOF) {
			p.bump(node)
			terminated = true
			break
		}
		if p.check(TokenBegin) {
			node.AddChild(p.parsePropertiesBlock())
		} else {
			for !p.atLineEnd() {
				p.bump(node)
			}
		}
		p.endOfLine(node)
		if !progress() {
			continue
		}
	}
	if !terminated {
		p.errorAt(p.peek().Span.Start, DiagStructural, "missing End for Begin block")
	}
	return p.finishNode(node)
}

// --- procedures ---

func (p *Parser) parseProcedure() *Node {
	kind := KindSubStatement
	n := 0
	for p.peekN(n).Kind == TokenPublic || p.peekN(n).Kind == TokenPrivate ||
		p.peekN(n).Kind == TokenFriend || p.peekN(n).Kind == TokenStatic {
		n++
	}
	var closer SyntaxKind
	switch p.peekN(n).Kind {
	case TokenFunction:
		kind = KindFunctionStatement
		closer = TokenFunction
	case TokenProperty:
		kind = KindPropertyStatement
		closer = TokenProperty
	default:
		closer = TokenSub
	}

	node := p.startNode(kind)
	for p.match(TokenPublic, TokenPrivate, TokenFriend, TokenStatic) {
		p.bump(node)
	}
	p.bump(node) // Sub, Function, or Property
	if kind == KindPropertyStatement {
		if p.match(TokenGet, TokenLet, TokenSet) {
			p.bump(node)
		} else {
			node.AddChild(p.errorNode("expected Get, Let, or Set after Property"))
		}
	}
	if p.check(TokenIdentifier) {
		p.bump(node)
		p.bumpTypeSuffix(node)
	} else {
		node.AddChild(p.errorNode("expected procedure name"))
	}
	if p.check(TokenLParen) {
		node.AddChild(p.parseParameterList())
	}
	if p.check(TokenAs) {
		p.parseAsClause(node)
	}
	p.endOfLine(node)

	node.AddChild(p.parseStatementList(p.atBlockBoundary))

	if p.check(TokenEnd) && p.peekN(1).Kind == closer {
		p.bump(node)
		p.bump(node)
	} else {
		p.errorAt(p.peek().Span.Start, DiagStructural, "missing End "+closer.String())
	}
	return p.finishNode(node)
}

func (p *Parser) parseParameterList() *Node {
	list := p.startNode(KindParameterList)
	p.bump(list)
	for !p.check(TokenRParen) && !p.check(TokenNewline) && !p.check(TokenEOF) {
		progress := p.mustProgress(list)
		if p.check(TokenComma) {
			p.bump(list)
			continue
		}
		list.AddChild(p.parseParameter())
		if !progress() {
			break
		}
	}
	p.expect(list, TokenRParen)
	return p.finishNode(list)
}

func (p *Parser) parseParameter() *Node {
	param := p.startNode(KindParameter)
	for p.match(TokenOptional, TokenByVal, TokenByRef, TokenParamArray) {
		p.bump(param)
	}
	if p.check(TokenIdentifier) {
		p.bump(param)
		p.bumpTypeSuffix(param)
	} else {
		param.AddChild(p.errorNode("expected parameter name", TokenIdentifier))
		return p.finishNode(param)
	}
	if p.check(TokenLParen) {
		p.bump(param)
		p.expect(param, TokenRParen)
	}
	if p.check(TokenAs) {
		p.parseAsClause(param)
	}
	if p.check(TokenEQ) {
		p.bump(param)
		param.AddChild(p.parseExpression())
	}
	return p.finishNode(param)
}

// --- block statements ---

// parseStatementList gathers statements until the stop condition holds or
// the input runs out. Blank lines and separators stay in the list node.
func (p *Parser) parseStatementList(stop func() bool) *Node {
	list := p.startNode(KindStatementList)
	for !p.check(TokenEOF) && !stop() {
		progress := p.mustProgress(list)
		if p.match(TokenNewline, TokenColon) {
			p.bump(list)
			continue
		}
		list.AddChild(p.parseStatement())
		if !progress() {
			continue
		}
	}
	return p.finishNode(list)
}

// atBlockBoundary reports whether the next token closes some enclosing
// block. Statement lists stop here even when it is not their own
// terminator, so a block missing its `End X` closes with one diagnostic
// instead of swallowing the rest of the file.
func (p *Parser) atBlockBoundary() bool {
	switch p.peek().Kind {
	case TokenNext, TokenLoop, TokenWend, TokenElseIf, TokenElse, TokenCase:
		return true
	case TokenEnd:
		switch p.peekN(1).Kind {
		case TokenIf, TokenSub, TokenFunction, TokenProperty, TokenSelect,
			TokenWith, TokenType, TokenEnum:
			return true
		}
	}
	return false
}

func (p *Parser) atIfTerminator() bool {
	if p.match(TokenElseIf, TokenElse) {
		return true
	}
	return p.atBlockBoundary()
}

func (p *Parser) parseIf() *Node {
	node := p.startNode(KindIfStatement)
	p.bump(node)
	node.AddChild(p.parseExpression())
	p.expect(node, TokenThen)

	if !p.atLineEnd() {
		// Single-line form: statements up to the line end, with an
		// optional inline Else. `If x Then Else y = 1` has an empty
		// then-part and is still the single-line form.
		p.parseInlineBody(node)
		if p.check(TokenElse) {
			clause := p.startNode(KindElseClause)
			p.bump(clause)
			p.parseInlineBody(clause)
			node.AddChild(p.finishNode(clause))
		}
		return p.finishNode(node)
	}

	if p.check(TokenNewline) {
		p.bump(node)
	}
	node.AddChild(p.parseStatementList(p.atIfTerminator))

	for p.check(TokenElseIf) {
		clause := p.startNode(KindElseIfClause)
		p.bump(clause)
		clause.AddChild(p.parseExpression())
		p.expect(clause, TokenThen)
		if p.check(TokenNewline) {
			p.bump(clause)
		}
		clause.AddChild(p.parseStatementList(p.atIfTerminator))
		node.AddChild(p.finishNode(clause))
	}

	if p.check(TokenElse) {
		clause := p.startNode(KindElseClause)
		p.bump(clause)
		if p.check(TokenNewline) {
			p.bump(clause)
		}
		clause.AddChild(p.parseStatementList(p.atBlockBoundary))
		node.AddChild(p.finishNode(clause))
	}

	if p.check(TokenEnd) && p.peekN(1).Kind == TokenIf {
		p.bump(node)
		p.bump(node)
	} else {
		p.errorAt(p.peek().Span.Start, DiagStructural, "missing End If")
	}
	return p.finishNode(node)
}

// parseInlineBody consumes colon-separated simple statements on the
// current line, stopping before Else so the caller can claim it.
func (p *Parser) parseInlineBody(parent *Node) {
	for {
		progress := p.mustProgress(parent)
		if p.check(TokenColon) {
			p.bump(parent)
			continue
		}
		if p.match(TokenNewline, TokenEOF, TokenElse) {
			return
		}
		parent.AddChild(p.parseSimpleStatement())
		if !progress() {
			return
		}
	}
}

func (p *Parser) parseFor() *Node {
	if p.peekN(1).Kind == TokenEach {
		return p.parseForEach()
	}
	node := p.startNode(KindForStatement)
	p.bump(node)
	if p.check(TokenIdentifier) {
		node.AddChild(p.parsePostfixExpression())
	} else {
		node.AddChild(p.errorNode("expected loop variable"))
	}
	p.expect(node, TokenEQ)
	node.AddChild(p.parseExpression())
	p.expect(node, TokenTo)
	node.AddChild(p.parseExpression())
	if p.check(TokenStep) {
		p.bump(node)
		node.AddChild(p.parseExpression())
	}
	p.endOfLine(node)
	node.AddChild(p.parseStatementList(p.atBlockBoundary))
	p.parseNext(node)
	return p.finishNode(node)
}

func (p *Parser) parseForEach() *Node {
	node := p.startNode(KindForEachStatement)
	p.bump(node)
	p.bump(node)
	if p.check(TokenIdentifier) {
		node.AddChild(p.parsePostfixExpression())
	} else {
		node.AddChild(p.errorNode("expected loop variable"))
	}
	p.expect(node, TokenIn)
	node.AddChild(p.parseExpression())
	p.endOfLine(node)
	node.AddChild(p.parseStatementList(p.atBlockBoundary))
	p.parseNext(node)
	return p.finishNode(node)
}

// parseNext consumes the Next line of a For loop, with the optional
// counter names `Next i` or `Next i, j`.
func (p *Parser) parseNext(node *Node) {
	if !p.check(TokenNext) {
		p.errorAt(p.peek().Span.Start, DiagStructural, "missing Next")
		return
	}
	p.bump(node)
	for p.check(TokenIdentifier) {
		node.AddChild(p.parsePostfixExpression())
		if !p.check(TokenComma) {
			break
		}
		p.bump(node)
	}
}

func (p *Parser) parseDo() *Node {
	node := p.startNode(KindDoStatement)
	p.bump(node)
	if p.match(TokenWhile, TokenUntil) {
		p.bump(node)
		node.AddChild(p.parseExpression())
	}
	p.endOfLine(node)
	node.AddChild(p.parseStatementList(p.atBlockBoundary))
	if p.check(TokenLoop) {
		p.bump(node)
		if p.match(TokenWhile, TokenUntil) {
			p.bump(node)
			node.AddChild(p.parseExpression())
		}
	} else {
		p.errorAt(p.peek().Span.Start, DiagStructural, "missing Loop")
	}
	return p.finishNode(node)
}

func (p *Parser) parseWhile() *Node {
	node := p.startNode(KindWhileStatement)
	p.bump(node)
	node.AddChild(p.parseExpression())
	p.endOfLine(node)
	node.AddChild(p.parseStatementList(p.atBlockBoundary))
	if p.check(TokenWend) {
		p.bump(node)
	} else {
		p.errorAt(p.peek().Span.Start, DiagStructural, "missing Wend")
	}
	return p.finishNode(node)
}

func (p *Parser) parseWith() *Node {
	node := p.startNode(KindWithStatement)
	p.bump(node)
	node.AddChild(p.parseExpression())
	p.endOfLine(node)
	node.AddChild(p.parseStatementList(p.atBlockBoundary))
	if p.check(TokenEnd) && p.peekN(1).Kind == TokenWith {
		p.bump(node)
		p.bump(node)
	} else {
		p.errorAt(p.peek().Span.Start, DiagStructural, "missing End With")
	}
	return p.finishNode(node)
}

func (p *Parser) atSelectTerminator() bool {
	if p.check(TokenCase) {
		return true
	}
	return p.atBlockBoundary()
}

func (p *Parser) parseSelectCase() *Node {
	node := p.startNode(KindSelectCaseStatement)
	p.bump(node)
	p.expect(node, TokenCase)
	node.AddChild(p.parseExpression())
	p.endOfLine(node)

	for !p.check(TokenEOF) {
		progress := p.mustProgress(node)
		if p.match(TokenNewline, TokenColon) {
			p.bump(node)
			continue
		}
		if p.check(TokenCase) {
			node.AddChild(p.parseCaseClause())
		} else if p.atBlockBoundary() {
			break
		} else {
			node.AddChild(p.errorNode("expected Case"))
			p.endOfLine(node)
		}
		if !progress() {
			continue
		}
	}

	if p.check(TokenEnd) && p.peekN(1).Kind == TokenSelect {
		p.bump(node)
		p.bump(node)
	} else {
		p.errorAt(p.peek().Span.Start, DiagStructural, "missing End Select")
	}
	return p.finishNode(node)
}

func (p *Parser) parseCaseClause() *Node {
	if p.peekN(1).Kind == TokenElse {
		clause := p.startNode(KindCaseElseClause)
		p.bump(clause)
		p.bump(clause)
		p.endOfLine(clause)
		clause.AddChild(p.parseStatementList(p.atSelectTerminator))
		return p.finishNode(clause)
	}

	clause := p.startNode(KindCaseClause)
	p.bump(clause)
	for {
		progress := p.mustProgress(clause)
		if p.check(TokenIs) {
			p.bump(clause)
			if p.match(TokenEQ, TokenNE, TokenLT, TokenLE, TokenGT, TokenGE) {
				p.bump(clause)
			}
			clause.AddChild(p.parseExpression())
		} else {
			clause.AddChild(p.parseExpression())
			if p.check(TokenTo) {
				p.bump(clause)
				clause.AddChild(p.parseExpression())
			}
		}
		if !p.check(TokenComma) {
			_ = progress()
			break
		}
		p.bump(clause)
		if !progress() {
			break
		}
	}
	p.endOfLine(clause)
	clause.AddChild(p.parseStatementList(p.atSelectTerminator))
	return p.finishNode(clause)
}

// --- Type and Enum blocks ---

func (p *Parser) parseTypeBlock() *Node {
	node := p.startNode(KindTypeStatement)
	for p.match(TokenPublic, TokenPrivate) {
		p.bump(node)
	}
	p.expect(node, TokenType)
	if p.check(TokenIdentifier) {
		p.bump(node)
	} else {
		node.AddChild(p.errorNode("expected type name"))
	}
	p.endOfLine(node)

	for !p.check(TokenEOF) {
		progress := p.mustProgress(node)
		if p.match(TokenNewline, TokenColon) {
			p.bump(node)
			continue
		}
		if p.atBlockBoundary() {
			break
		}
		member := p.startNode(KindDimStatement)
		p.parseVariableList(member)
		node.AddChild(p.finishNode(member))
		p.endOfLine(node)
		if !progress() {
			continue
		}
	}

	if p.check(TokenEnd) && p.peekN(1).Kind == TokenType {
		p.bump(node)
		p.bump(node)
	} else {
		p.errorAt(p.peek().Span.Start, DiagStructural, "missing End Type")
	}
	return p.finishNode(node)
}

func (p *Parser) parseEnumBlock() *Node {
	node := p.startNode(KindEnumStatement)
	for p.match(TokenPublic, TokenPrivate) {
		p.bump(node)
	}
	p.expect(node, TokenEnum)
	if p.check(TokenIdentifier) {
		p.bump(node)
	} else {
		node.AddChild(p.errorNode("expected enum name"))
	}
	p.endOfLine(node)

	for !p.check(TokenEOF) {
		progress := p.mustProgress(node)
		if p.match(TokenNewline, TokenColon) {
			p.bump(node)
			continue
		}
		if p.atBlockBoundary() {
			break
		}
		member := p.startNode(KindConstStatement)
		if p.check(TokenIdentifier) {
			p.bump(member)
			if p.check(TokenEQ) {
				p.bump(member)
				member.AddChild(p.parseExpression())
			}
		} else {
			member.AddChild(p.errorNode("expected enum member name"))
		}
		node.AddChild(p.finishNode(member))
		p.endOfLine(node)
		if !progress() {
			continue
		}
	}

	if p.check(TokenEnd) && p.peekN(1).Kind == TokenEnum {
		p.bump(node)
		p.bump(node)
	} else {
		p.errorAt(p.peek().Span.Start, DiagStructural, "missing End Enum")
	}
	return p.finishNode(node)
}
