package protocol

import (
	"github.com/ingestkit/eventschema"
)

// Field policy tables. Built once, shared by reference across traversals.
var (
	transactionAttrs = &eventschema.FieldAttrs{MaxChars: 200, MaxCharsAllowance: 20, TrimWhitespace: true}
	releaseAttrs     = &eventschema.FieldAttrs{MaxChars: 200, MaxCharsAllowance: 20, Nonempty: true, TrimWhitespace: true}
	distAttrs        = &eventschema.FieldAttrs{MaxChars: 64, Nonempty: true, TrimWhitespace: true}
	environmentAttrs = &eventschema.FieldAttrs{MaxChars: 64, Nonempty: true}
	loggerAttrs      = &eventschema.FieldAttrs{MaxChars: 64, TrimWhitespace: true}
	platformAttrs    = &eventschema.FieldAttrs{MaxChars: 64}
	levelAttrs       = &eventschema.FieldAttrs{MaxChars: 32}

	messageAttrs = &eventschema.FieldAttrs{MaxChars: 8192, MaxCharsAllowance: 200, Pii: eventschema.PiiTrue}
	extraAttrs   = &eventschema.FieldAttrs{MaxDepth: 7, MaxBytes: 262144, Pii: eventschema.PiiMaybe}
	tagsAttrs    = &eventschema.FieldAttrs{MaxChars: 200, Pii: eventschema.PiiMaybe}
	modulesAttrs = &eventschema.FieldAttrs{MaxChars: 128}

	userAttrs   = &eventschema.FieldAttrs{Pii: eventschema.PiiTrue}
	userIdAttrs = &eventschema.FieldAttrs{MaxChars: 128, Pii: eventschema.PiiTrue}
	emailAttrs  = &eventschema.FieldAttrs{MaxChars: 75, Pii: eventschema.PiiTrue}
	ipAttrs     = &eventschema.FieldAttrs{MaxChars: 45, Pii: eventschema.PiiTrue}

	urlAttrs         = &eventschema.FieldAttrs{MaxChars: 8192, Pii: eventschema.PiiMaybe}
	headersAttrs     = &eventschema.FieldAttrs{Pii: eventschema.PiiMaybe}
	requestDataAttrs = &eventschema.FieldAttrs{MaxDepth: 7, MaxBytes: 262144, Pii: eventschema.PiiTrue}
	requestEnvAttrs  = &eventschema.FieldAttrs{MaxDepth: 5, Pii: eventschema.PiiMaybe}

	exceptionValueAttrs = &eventschema.FieldAttrs{MaxChars: 8192, MaxCharsAllowance: 200, Pii: eventschema.PiiTrue}
	frameAttrs          = &eventschema.FieldAttrs{MaxChars: 256}

	breadcrumbDataAttrs = &eventschema.FieldAttrs{MaxDepth: 5, MaxBytes: 16384, Pii: eventschema.PiiMaybe}
	contextAttrs        = &eventschema.FieldAttrs{MaxDepth: 7, Pii: eventschema.PiiMaybe}
)
