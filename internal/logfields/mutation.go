package logfields

import "go.uber.org/zap"

func MutationKind(val string) zap.Field {
	return zap.String("mutation", val)
}

func CommentTag(val string) zap.Field {
	return zap.String("comment_tag", val)
}

func DryRun(val bool) zap.Field {
	return zap.Bool("dry_run", val)
}
