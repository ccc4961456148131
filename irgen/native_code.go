package irgen

// NativeCode is the object-file artifact produced by GenerateExecutable,
// ready to be handed to LinkExecutable.
type NativeCode struct {
	ObjectFile string
	EntryPoint string
	Stats      Stats
}

// Stats carries codegen-level statistics surfaced to compiler.Stats.
type Stats struct {
	NativeInstructions int64
	JumpTableCases     int64
}
