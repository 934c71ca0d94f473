package lib

type Mode uint

const (
	ModeUnknown Mode = 0
	ModeBuild   Mode = 1
	ModeExport  Mode = 2
	ModeInspect Mode = 4
)

func (self Mode) String() string {
	switch self {
	case ModeBuild:
		return "build"
	case ModeExport:
		return "export"
	case ModeInspect:
		return "inspect"
	}
	return "unknown"
}
