package parser

import (
	"fmt"
	"strings"
)

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Span struct {
	Start Position
	End   Position
}

// Token is a single lexeme. Literal holds the exact source text, casing
// included, so concatenating the literals of a token stream reproduces the
// input byte for byte.
type Token struct {
	Kind    SyntaxKind
	Span    Span
	Literal string
}

// keywords maps the lower-cased spelling to the keyword kind. VB6 keywords
// are case-insensitive; the token Literal keeps whatever casing the source
// used.
var keywords = map[string]SyntaxKind{
	"access":        TokenAccess,
	"addressof":     TokenAddressOf,
	"alias":         TokenAlias,
	"and":           TokenAnd,
	"any":           TokenAny,
	"appactivate":   TokenAppActivate,
	"append":        TokenAppend,
	"as":            TokenAs,
	"attribute":     TokenAttribute,
	"base":          TokenBase,
	"beep":          TokenBeep,
	"begin":         TokenBegin,
	"binary":        TokenBinary,
	"boolean":       TokenBoolean,
	"byref":         TokenByRef,
	"byte":          TokenByte,
	"byval":         TokenByVal,
	"call":          TokenCall,
	"case":          TokenCase,
	"chdir":         TokenChDir,
	"chdrive":       TokenChDrive,
	"class":         TokenClass,
	"close":         TokenClose,
	"compare":       TokenCompare,
	"const":         TokenConst,
	"currency":      TokenCurrency,
	"database":      TokenDatabase,
	"date":          TokenDate,
	"decimal":       TokenDecimal,
	"declare":       TokenDeclare,
	"defbool":       TokenDefBool,
	"defbyte":       TokenDefByte,
	"defcur":        TokenDefCur,
	"defdate":       TokenDefDate,
	"defdbl":        TokenDefDbl,
	"defdec":        TokenDefDec,
	"defint":        TokenDefInt,
	"deflng":        TokenDefLng,
	"defobj":        TokenDefObj,
	"defsng":        TokenDefSng,
	"defstr":        TokenDefStr,
	"defvar":        TokenDefVar,
	"deletesetting": TokenDeleteSetting,
	"dim":           TokenDim,
	"do":            TokenDo,
	"double":        TokenDouble,
	"each":          TokenEach,
	"else":          TokenElse,
	"elseif":        TokenElseIf,
	"empty":         TokenEmpty,
	"end":           TokenEnd,
	"enum":          TokenEnum,
	"eqv":           TokenEqv,
	"erase":         TokenErase,
	"error":         TokenError,
	"event":         TokenEvent,
	"exit":          TokenExit,
	"explicit":      TokenExplicit,
	"false":         TokenFalse,
	"filecopy":      TokenFileCopy,
	"for":           TokenFor,
	"friend":        TokenFriend,
	"function":      TokenFunction,
	"get":           TokenGet,
	"gosub":         TokenGoSub,
	"goto":          TokenGoTo,
	"if":            TokenIf,
	"imp":           TokenImp,
	"implements":    TokenImplements,
	"in":            TokenIn,
	"input":         TokenInput,
	"integer":       TokenInteger,
	"is":            TokenIs,
	"kill":          TokenKill,
	"len":           TokenLen,
	"let":           TokenLet,
	"lib":           TokenLib,
	"like":          TokenLike,
	"line":          TokenLine,
	"load":          TokenLoad,
	"lock":          TokenLock,
	"long":          TokenLong,
	"loop":          TokenLoop,
	"lset":          TokenLSet,
	"me":            TokenMe,
	"mid":           TokenMid,
	"midb":          TokenMidB,
	"mkdir":         TokenMkDir,
	"mod":           TokenMod,
	"module":        TokenModule,
	"name":          TokenName,
	"new":           TokenNew,
	"next":          TokenNext,
	"not":           TokenNot,
	"nothing":       TokenNothing,
	"null":          TokenNull,
	"object":        TokenObject,
	"off":           TokenOff,
	"on":            TokenOn,
	"open":          TokenOpen,
	"option":        TokenOption,
	"optional":      TokenOptional,
	"or":            TokenOr,
	"output":        TokenOutput,
	"paramarray":    TokenParamArray,
	"preserve":      TokenPreserve,
	"print":         TokenPrint,
	"private":       TokenPrivate,
	"property":      TokenProperty,
	"public":        TokenPublic,
	"put":           TokenPut,
	"raiseevent":    TokenRaiseEvent,
	"random":        TokenRandom,
	"randomize":     TokenRandomize,
	"read":          TokenRead,
	"redim":         TokenReDim,
	"reset":         TokenReset,
	"resume":        TokenResume,
	"return":        TokenReturn,
	"rmdir":         TokenRmDir,
	"rset":          TokenRSet,
	"savepicture":   TokenSavePicture,
	"savesetting":   TokenSaveSetting,
	"seek":          TokenSeek,
	"select":        TokenSelect,
	"sendkeys":      TokenSendKeys,
	"set":           TokenSet,
	"setattr":       TokenSetAttr,
	"single":        TokenSingle,
	"static":        TokenStatic,
	"step":          TokenStep,
	"stop":          TokenStop,
	"string":        TokenString,
	"sub":           TokenSub,
	"text":          TokenText,
	"then":          TokenThen,
	"time":          TokenTime,
	"to":            TokenTo,
	"true":          TokenTrue,
	"type":          TokenType,
	"typeof":        TokenTypeOf,
	"unload":        TokenUnload,
	"unlock":        TokenUnlock,
	"until":         TokenUntil,
	"variant":       TokenVariant,
	"version":       TokenVersion,
	"wend":          TokenWend,
	"while":         TokenWhile,
	"width":         TokenWidth,
	"with":          TokenWith,
	"withevents":    TokenWithEvents,
	"write":         TokenWrite,
	"xor":           TokenXor,
}

// LookupKeyword classifies an identifier spelling. The comparison ignores
// case; a spelling that is not a keyword stays an Identifier.
func LookupKeyword(ident string) SyntaxKind {
	if kind, ok := keywords[strings.ToLower(ident)]; ok {
		return kind
	}
	return TokenIdentifier
}
