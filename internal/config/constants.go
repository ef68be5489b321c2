package config

const SourceFileExt = ".mk"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".mk", ".monkey"}

// SettingsFileName is looked up in the working directory and its parents.
const SettingsFileName = "monkey.yaml"

// Built-in function names
const (
	LenFuncName   = "len"
	FirstFuncName = "first"
	LastFuncName  = "last"
	RestFuncName  = "rest"
	PushFuncName  = "push"
	PutsFuncName  = "puts"
)

// Console commands
const (
	QuitCommand   = ":quit"
	EnvCommand    = ":env"
	TokensCommand = ":tokens"
)
