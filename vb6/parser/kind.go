package parser

// SyntaxKind identifies every node and token category in the VB6 concrete
// syntax tree. The set is closed: extending the grammar means appending new
// kinds, never reusing existing ones.
type SyntaxKind int

const (
	KindError SyntaxKind = iota

	// Tree root
	KindRoot

	// Header statements
	KindVersionStatement
	KindPropertiesBlock
	KindAttributeStatement
	KindOptionStatement
	KindObjectStatement

	// Declarations
	KindDimStatement
	KindConstStatement
	KindReDimStatement
	KindEraseStatement
	KindTypeStatement
	KindEnumStatement
	KindDeclareStatement
	KindEventStatement
	KindImplementsStatement
	KindDefTypeStatement

	// Procedures
	KindSubStatement
	KindFunctionStatement
	KindPropertyStatement

	// Control flow
	KindIfStatement
	KindElseIfClause
	KindElseClause
	KindForStatement
	KindForEachStatement
	KindWhileStatement
	KindDoStatement
	KindSelectCaseStatement
	KindCaseClause
	KindCaseElseClause
	KindWithStatement
	KindGotoStatement
	KindGoSubStatement
	KindReturnStatement
	KindResumeStatement
	KindExitStatement
	KindOnErrorStatement
	KindOnGotoStatement
	KindLabelStatement
	KindEndStatement

	// Object and assignment statements
	KindCallStatement
	KindSetStatement
	KindLetStatement
	KindAssignmentStatement
	KindRaiseEventStatement
	KindExpressionStatement

	// Built-in command statements. These share one generic grammar rule:
	// the command keyword followed by an ordinary argument expression list.
	KindAppActivateStatement
	KindBeepStatement
	KindChDirStatement
	KindChDriveStatement
	KindCloseStatement
	KindDateStatement
	KindDeleteSettingStatement
	KindErrorStatement
	KindFileCopyStatement
	KindGetStatement
	KindInputStatement
	KindKillStatement
	KindLineStatement
	KindLineInputStatement
	KindLoadStatement
	KindLockStatement
	KindLSetStatement
	KindMidStatement
	KindMkDirStatement
	KindNameStatement
	KindOpenStatement
	KindPrintStatement
	KindPutStatement
	KindRandomizeStatement
	KindResetStatement
	KindRmDirStatement
	KindRSetStatement
	KindSavePictureStatement
	KindSaveSettingStatement
	KindSeekStatement
	KindSendKeysStatement
	KindSetAttrStatement
	KindStopStatement
	KindTimeStatement
	KindUnloadStatement
	KindUnlockStatement
	KindWidthStatement
	KindWriteStatement

	// Expressions
	KindBinaryExpression
	KindUnaryExpression
	KindLiteralExpression
	KindIdentifierExpression
	KindMemberAccessExpression
	KindCallExpression
	KindParenthesizedExpression
	KindNewExpression
	KindAddressOfExpression
	KindTypeOfExpression

	// Structure
	KindStatementList
	KindArgumentList
	KindNamedArgument
	KindParameterList
	KindParameter

	// Trivia tokens
	TokenWhitespace
	TokenNewline
	TokenLineContinuation
	TokenComment
	TokenRemComment

	// Literals and identifiers
	TokenIdentifier
	TokenStringLiteral
	TokenIntegerLiteral
	TokenLongLiteral
	TokenSingleLiteral
	TokenDoubleLiteral
	TokenDecimalLiteral
	TokenDateLiteral

	// Keywords
	TokenAccess
	TokenAddressOf
	TokenAlias
	TokenAnd
	TokenAny
	TokenAppActivate
	TokenAppend
	TokenAs
	TokenAttribute
	TokenBase
	TokenBeep
	TokenBegin
	TokenBinary
	TokenBoolean
	TokenByRef
	TokenByte
	TokenByVal
	TokenCall
	TokenCase
	TokenChDir
	TokenChDrive
	TokenClass
	TokenClose
	TokenCompare
	TokenConst
	TokenCurrency
	TokenDatabase
	TokenDate
	TokenDecimal
	TokenDeclare
	TokenDefBool
	TokenDefByte
	TokenDefCur
	TokenDefDate
	TokenDefDbl
	TokenDefDec
	TokenDefInt
	TokenDefLng
	TokenDefObj
	TokenDefSng
	TokenDefStr
	TokenDefVar
	TokenDeleteSetting
	TokenDim
	TokenDo
	TokenDouble
	TokenEach
	TokenElse
	TokenElseIf
	TokenEmpty
	TokenEnd
	TokenEnum
	TokenEqv
	TokenErase
	TokenError
	TokenEvent
	TokenExit
	TokenExplicit
	TokenFalse
	TokenFileCopy
	TokenFor
	TokenFriend
	TokenFunction
	TokenGet
	TokenGoSub
	TokenGoTo
	TokenIf
	TokenImp
	TokenImplements
	TokenIn
	TokenInput
	TokenInteger
	TokenIs
	TokenKill
	TokenLen
	TokenLet
	TokenLib
	TokenLike
	TokenLine
	TokenLoad
	TokenLock
	TokenLong
	TokenLoop
	TokenLSet
	TokenMe
	TokenMid
	TokenMidB
	TokenMkDir
	TokenMod
	TokenModule
	TokenName
	TokenNew
	TokenNext
	TokenNot
	TokenNothing
	TokenNull
	TokenObject
	TokenOff
	TokenOn
	TokenOpen
	TokenOption
	TokenOptional
	TokenOr
	TokenOutput
	TokenParamArray
	TokenPreserve
	TokenPrint
	TokenPrivate
	TokenProperty
	TokenPublic
	TokenPut
	TokenRaiseEvent
	TokenRandom
	TokenRandomize
	TokenRead
	TokenReDim
	TokenReset
	TokenResume
	TokenReturn
	TokenRmDir
	TokenRSet
	TokenSavePicture
	TokenSaveSetting
	TokenSeek
	TokenSelect
	TokenSendKeys
	TokenSet
	TokenSetAttr
	TokenSingle
	TokenStatic
	TokenStep
	TokenStop
	TokenString
	TokenSub
	TokenText
	TokenThen
	TokenTime
	TokenTo
	TokenTrue
	TokenType
	TokenTypeOf
	TokenUnload
	TokenUnlock
	TokenUntil
	TokenVariant
	TokenVersion
	TokenWend
	TokenWhile
	TokenWidth
	TokenWith
	TokenWithEvents
	TokenWrite
	TokenXor

	// Operators and punctuation
	TokenEQ
	TokenNE
	TokenLE
	TokenGE
	TokenLT
	TokenGT
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenBackslash
	TokenCaret
	TokenAmpersand
	TokenDot
	TokenComma
	TokenColon
	TokenSemicolon
	TokenLParen
	TokenRParen
	TokenLBracket
	TokenRBracket
	TokenLBrace
	TokenRBrace
	TokenBang
	TokenOctothorpe
	TokenDollar
	TokenPercent
	TokenAt
	TokenUnderscore

	// End of input and invalid input
	TokenEOF
	TokenIllegal
)

var kindNames = map[SyntaxKind]string{
	KindError: "Error",
	KindRoot:  "Root",

	KindVersionStatement:   "VersionStatement",
	KindPropertiesBlock:    "PropertiesBlock",
	KindAttributeStatement: "AttributeStatement",
	KindOptionStatement:    "OptionStatement",
	KindObjectStatement:    "ObjectStatement",

	KindDimStatement:        "DimStatement",
	KindConstStatement:      "ConstStatement",
	KindReDimStatement:      "ReDimStatement",
	KindEraseStatement:      "EraseStatement",
	KindTypeStatement:       "TypeStatement",
	KindEnumStatement:       "EnumStatement",
	KindDeclareStatement:    "DeclareStatement",
	KindEventStatement:      "EventStatement",
	KindImplementsStatement: "ImplementsStatement",
	KindDefTypeStatement:    "DefTypeStatement",

	KindSubStatement:      "SubStatement",
	KindFunctionStatement: "FunctionStatement",
	KindPropertyStatement: "PropertyStatement",

	KindIfStatement:         "IfStatement",
	KindElseIfClause:        "ElseIfClause",
	KindElseClause:          "ElseClause",
	KindForStatement:        "ForStatement",
	KindForEachStatement:    "ForEachStatement",
	KindWhileStatement:      "WhileStatement",
	KindDoStatement:         "DoStatement",
	KindSelectCaseStatement: "SelectCaseStatement",
	KindCaseClause:          "CaseClause",
	KindCaseElseClause:      "CaseElseClause",
	KindWithStatement:       "WithStatement",
	KindGotoStatement:       "GotoStatement",
	KindGoSubStatement:      "GoSubStatement",
	KindReturnStatement:     "ReturnStatement",
	KindResumeStatement:     "ResumeStatement",
	KindExitStatement:       "ExitStatement",
	KindOnErrorStatement:    "OnErrorStatement",
	KindOnGotoStatement:     "OnGotoStatement",
	KindLabelStatement:      "LabelStatement",
	KindEndStatement:        "EndStatement",

	KindCallStatement:       "CallStatement",
	KindSetStatement:        "SetStatement",
	KindLetStatement:        "LetStatement",
	KindAssignmentStatement: "AssignmentStatement",
	KindRaiseEventStatement: "RaiseEventStatement",
	KindExpressionStatement: "ExpressionStatement",

	KindAppActivateStatement:   "AppActivateStatement",
	KindBeepStatement:          "BeepStatement",
	KindChDirStatement:         "ChDirStatement",
	KindChDriveStatement:       "ChDriveStatement",
	KindCloseStatement:         "CloseStatement",
	KindDateStatement:          "DateStatement",
	KindDeleteSettingStatement: "DeleteSettingStatement",
	KindErrorStatement:         "ErrorStatement",
	KindFileCopyStatement:      "FileCopyStatement",
	KindGetStatement:           "GetStatement",
	KindInputStatement:         "InputStatement",
	KindKillStatement:          "KillStatement",
	KindLineStatement:          "LineStatement",
	KindLineInputStatement:     "LineInputStatement",
	KindLoadStatement:          "LoadStatement",
	KindLockStatement:          "LockStatement",
	KindLSetStatement:          "LSetStatement",
	KindMidStatement:           "MidStatement",
	KindMkDirStatement:         "MkDirStatement",
	KindNameStatement:          "NameStatement",
	KindOpenStatement:          "OpenStatement",
	KindPrintStatement:         "PrintStatement",
	KindPutStatement:           "PutStatement",
	KindRandomizeStatement:     "RandomizeStatement",
	KindResetStatement:         "ResetStatement",
	KindRmDirStatement:         "RmDirStatement",
	KindRSetStatement:          "RSetStatement",
	KindSavePictureStatement:   "SavePictureStatement",
	KindSaveSettingStatement:   "SaveSettingStatement",
	KindSeekStatement:          "SeekStatement",
	KindSendKeysStatement:      "SendKeysStatement",
	KindSetAttrStatement:       "SetAttrStatement",
	KindStopStatement:          "StopStatement",
	KindTimeStatement:          "TimeStatement",
	KindUnloadStatement:        "UnloadStatement",
	KindUnlockStatement:        "UnlockStatement",
	KindWidthStatement:         "WidthStatement",
	KindWriteStatement:         "WriteStatement",

	KindBinaryExpression:        "BinaryExpression",
	KindUnaryExpression:         "UnaryExpression",
	KindLiteralExpression:       "LiteralExpression",
	KindIdentifierExpression:    "IdentifierExpression",
	KindMemberAccessExpression:  "MemberAccessExpression",
	KindCallExpression:          "CallExpression",
	KindParenthesizedExpression: "ParenthesizedExpression",
	KindNewExpression:           "NewExpression",
	KindAddressOfExpression:     "AddressOfExpression",
	KindTypeOfExpression:        "TypeOfExpression",

	KindStatementList: "StatementList",
	KindArgumentList:  "ArgumentList",
	KindNamedArgument: "NamedArgument",
	KindParameterList: "ParameterList",
	KindParameter:     "Parameter",

	TokenWhitespace:       "Whitespace",
	TokenNewline:          "Newline",
	TokenLineContinuation: "LineContinuation",
	TokenComment:          "Comment",
	TokenRemComment:       "RemComment",

	TokenIdentifier:      "Identifier",
	TokenStringLiteral:   "StringLiteral",
	TokenIntegerLiteral:  "IntegerLiteral",
	TokenLongLiteral:     "LongLiteral",
	TokenSingleLiteral:   "SingleLiteral",
	TokenDoubleLiteral:   "DoubleLiteral",
	TokenDecimalLiteral:  "DecimalLiteral",
	TokenDateLiteral:     "DateLiteral",

	TokenAccess:        "AccessKeyword",
	TokenAddressOf:     "AddressOfKeyword",
	TokenAlias:         "AliasKeyword",
	TokenAnd:           "AndKeyword",
	TokenAny:           "AnyKeyword",
	TokenAppActivate:   "AppActivateKeyword",
	TokenAppend:        "AppendKeyword",
	TokenAs:            "AsKeyword",
	TokenAttribute:     "AttributeKeyword",
	TokenBase:          "BaseKeyword",
	TokenBeep:          "BeepKeyword",
	TokenBegin:         "BeginKeyword",
	TokenBinary:        "BinaryKeyword",
	TokenBoolean:       "BooleanKeyword",
	TokenByRef:         "ByRefKeyword",
	TokenByte:          "ByteKeyword",
	TokenByVal:         "ByValKeyword",
	TokenCall:          "CallKeyword",
	TokenCase:          "CaseKeyword",
	TokenChDir:         "ChDirKeyword",
	TokenChDrive:       "ChDriveKeyword",
	TokenClass:         "ClassKeyword",
	TokenClose:         "CloseKeyword",
	TokenCompare:       "CompareKeyword",
	TokenConst:         "ConstKeyword",
	TokenCurrency:      "CurrencyKeyword",
	TokenDatabase:      "DatabaseKeyword",
	TokenDate:          "DateKeyword",
	TokenDecimal:       "DecimalKeyword",
	TokenDeclare:       "DeclareKeyword",
	TokenDefBool:       "DefBoolKeyword",
	TokenDefByte:       "DefByteKeyword",
	TokenDefCur:        "DefCurKeyword",
	TokenDefDate:       "DefDateKeyword",
	TokenDefDbl:        "DefDblKeyword",
	TokenDefDec:        "DefDecKeyword",
	TokenDefInt:        "DefIntKeyword",
	TokenDefLng:        "DefLngKeyword",
	TokenDefObj:        "DefObjKeyword",
	TokenDefSng:        "DefSngKeyword",
	TokenDefStr:        "DefStrKeyword",
	TokenDefVar:        "DefVarKeyword",
	TokenDeleteSetting: "DeleteSettingKeyword",
	TokenDim:           "DimKeyword",
	TokenDo:            "DoKeyword",
	TokenDouble:        "DoubleKeyword",
	TokenEach:          "EachKeyword",
	TokenElse:          "ElseKeyword",
	TokenElseIf:        "ElseIfKeyword",
	TokenEmpty:         "EmptyKeyword",
	TokenEnd:           "EndKeyword",
	TokenEnum:          "EnumKeyword",
	TokenEqv:           "EqvKeyword",
	TokenErase:         "EraseKeyword",
	TokenError:         "ErrorKeyword",
	TokenEvent:         "EventKeyword",
	TokenExit:          "ExitKeyword",
	TokenExplicit:      "ExplicitKeyword",
	TokenFalse:         "FalseKeyword",
	TokenFileCopy:      "FileCopyKeyword",
	TokenFor:           "ForKeyword",
	TokenFriend:        "FriendKeyword",
	TokenFunction:      "FunctionKeyword",
	TokenGet:           "GetKeyword",
	TokenGoSub:         "GoSubKeyword",
	TokenGoTo:          "GotoKeyword",
	TokenIf:            "IfKeyword",
	TokenImp:           "ImpKeyword",
	TokenImplements:    "ImplementsKeyword",
	TokenIn:            "InKeyword",
	TokenInput:         "InputKeyword",
	TokenInteger:       "IntegerKeyword",
	TokenIs:            "IsKeyword",
	TokenKill:          "KillKeyword",
	TokenLen:           "LenKeyword",
	TokenLet:           "LetKeyword",
	TokenLib:           "LibKeyword",
	TokenLike:          "LikeKeyword",
	TokenLine:          "LineKeyword",
	TokenLoad:          "LoadKeyword",
	TokenLock:          "LockKeyword",
	TokenLong:          "LongKeyword",
	TokenLoop:          "LoopKeyword",
	TokenLSet:          "LSetKeyword",
	TokenMe:            "MeKeyword",
	TokenMid:           "MidKeyword",
	TokenMidB:          "MidBKeyword",
	TokenMkDir:         "MkDirKeyword",
	TokenMod:           "ModKeyword",
	TokenModule:        "ModuleKeyword",
	TokenName:          "NameKeyword",
	TokenNew:           "NewKeyword",
	TokenNext:          "NextKeyword",
	TokenNot:           "NotKeyword",
	TokenNothing:       "NothingKeyword",
	TokenNull:          "NullKeyword",
	TokenObject:        "ObjectKeyword",
	TokenOff:           "OffKeyword",
	TokenOn:            "OnKeyword",
	TokenOpen:          "OpenKeyword",
	TokenOption:        "OptionKeyword",
	TokenOptional:      "OptionalKeyword",
	TokenOr:            "OrKeyword",
	TokenOutput:        "OutputKeyword",
	TokenParamArray:    "ParamArrayKeyword",
	TokenPreserve:      "PreserveKeyword",
	TokenPrint:         "PrintKeyword",
	TokenPrivate:       "PrivateKeyword",
	TokenProperty:      "PropertyKeyword",
	TokenPublic:        "PublicKeyword",
	TokenPut:           "PutKeyword",
	TokenRaiseEvent:    "RaiseEventKeyword",
	TokenRandom:        "RandomKeyword",
	TokenRandomize:     "RandomizeKeyword",
	TokenRead:          "ReadKeyword",
	TokenReDim:         "ReDimKeyword",
	TokenReset:         "ResetKeyword",
	TokenResume:        "ResumeKeyword",
	TokenReturn:        "ReturnKeyword",
	TokenRmDir:         "RmDirKeyword",
	TokenRSet:          "RSetKeyword",
	TokenSavePicture:   "SavePictureKeyword",
	TokenSaveSetting:   "SaveSettingKeyword",
	TokenSeek:          "SeekKeyword",
	TokenSelect:        "SelectKeyword",
	TokenSendKeys:      "SendKeysKeyword",
	TokenSet:           "SetKeyword",
	TokenSetAttr:       "SetAttrKeyword",
	TokenSingle:        "SingleKeyword",
	TokenStatic:        "StaticKeyword",
	TokenStep:          "StepKeyword",
	TokenStop:          "StopKeyword",
	TokenString:        "StringKeyword",
	TokenSub:           "SubKeyword",
	TokenText:          "TextKeyword",
	TokenThen:          "ThenKeyword",
	TokenTime:          "TimeKeyword",
	TokenTo:            "ToKeyword",
	TokenTrue:          "TrueKeyword",
	TokenType:          "TypeKeyword",
	TokenTypeOf:        "TypeOfKeyword",
	TokenUnload:        "UnloadKeyword",
	TokenUnlock:        "UnlockKeyword",
	TokenUntil:         "UntilKeyword",
	TokenVariant:       "VariantKeyword",
	TokenVersion:       "VersionKeyword",
	TokenWend:          "WendKeyword",
	TokenWhile:         "WhileKeyword",
	TokenWidth:         "WidthKeyword",
	TokenWith:          "WithKeyword",
	TokenWithEvents:    "WithEventsKeyword",
	TokenWrite:         "WriteKeyword",
	TokenXor:           "XorKeyword",

	TokenEQ:         "=",
	TokenNE:         "<>",
	TokenLE:         "<=",
	TokenGE:         ">=",
	TokenLT:         "<",
	TokenGT:         ">",
	TokenPlus:       "+",
	TokenMinus:      "-",
	TokenStar:       "*",
	TokenSlash:      "/",
	TokenBackslash:  "\\",
	TokenCaret:      "^",
	TokenAmpersand:  "&",
	TokenDot:        ".",
	TokenComma:      ",",
	TokenColon:      ":",
	TokenSemicolon:  ";",
	TokenLParen:     "(",
	TokenRParen:     ")",
	TokenLBracket:   "[",
	TokenRBracket:   "]",
	TokenLBrace:     "{",
	TokenRBrace:     "}",
	TokenBang:       "!",
	TokenOctothorpe: "#",
	TokenDollar:     "$",
	TokenPercent:    "%",
	TokenAt:         "@",
	TokenUnderscore: "_",

	TokenEOF:     "EOF",
	TokenIllegal: "Illegal",
}

func (k SyntaxKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsToken reports whether k names a token category rather than a node
// category.
func (k SyntaxKind) IsToken() bool {
	return k >= TokenWhitespace && k <= TokenIllegal
}

// IsTrivia reports whether k is whitespace, a newline, a line continuation,
// or a comment. Trivia tokens carry no grammatical meaning but are kept in
// the tree so the original text can be reconstructed.
func (k SyntaxKind) IsTrivia() bool {
	switch k {
	case TokenWhitespace, TokenNewline, TokenLineContinuation, TokenComment, TokenRemComment:
		return true
	}
	return false
}

// IsKeyword reports whether k is a keyword token kind.
func (k SyntaxKind) IsKeyword() bool {
	return k >= TokenAccess && k <= TokenXor
}

// IsLiteral reports whether k is a literal token kind.
func (k SyntaxKind) IsLiteral() bool {
	switch k {
	case TokenStringLiteral, TokenIntegerLiteral, TokenLongLiteral,
		TokenSingleLiteral, TokenDoubleLiteral, TokenDecimalLiteral,
		TokenDateLiteral:
		return true
	}
	return false
}
