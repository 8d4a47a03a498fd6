// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	AssetAlreadyDeclared         = ExistsError("asset already declared")
	BoxAlreadyExists             = ExistsError("box already exists")
	BoxAlreadySpent              = NotFoundError("box already spent")
	BoxNotFound                  = NotFoundError("box not found")
	CannotDecodeAccount          = RecordError("cannot decode account")
	CannotDecodePrivateKey       = RecordError("cannot decode private key")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ChecksumMismatch             = ProcessError("checksum mismatch")
	ConfigurationFileMissing     = NotFoundError("configuration file missing")
	ConfigurationNotTable        = InvalidError("configuration is not a table")
	DatabaseIsNotSet             = ProcessError("database is not set")
	DoubleSpend                  = ExistsError("double spend")
	DuplicateInput               = InvalidError("duplicate input")
	FeeIsNegative                = InvalidError("fee is negative")
	FingerprintTooLong           = LengthError("fingerprint too long")
	FingerprintTooShort          = LengthError("fingerprint too short")
	GenesisNotAllowed            = InvalidError("genesis not allowed on live chain")
	IdentityNameNotFound         = NotFoundError("identity name not found")
	IncompatibleDatabaseVersion  = ProcessError("incompatible database version")
	InsufficientFunds            = InvalidError("insufficient funds")
	InvalidAmount                = InvalidError("invalid amount")
	InvalidBoxType               = RecordError("invalid box type")
	InvalidChain                 = InvalidError("invalid chain")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidIdLength              = LengthError("invalid id length")
	InvalidIpAddress             = InvalidError("invalid IP address")
	InvalidKeyLength             = InvalidError("invalid key length")
	InvalidKeyType               = InvalidError("invalid key type")
	InvalidLoggerChannel         = ProcessError("invalid logger channel")
	InvalidPassword              = InvalidError("invalid password")
	InvalidPrice                 = InvalidError("invalid price")
	InvalidRoleFlag              = RecordError("invalid role flag")
	InvalidSignature             = InvalidError("invalid signature")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	InvalidTimestamp             = InvalidError("invalid timestamp")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MalformedEncoding            = RecordError("malformed encoding")
	MetadataIsNotMap             = InvalidError("metadata is not map")
	MetadataTooLong              = LengthError("metadata too long")
	MissingParameters            = InvalidError("missing parameters")
	MissingProof                 = InvalidError("missing proof")
	NameTooLong                  = LengthError("name too long")
	NegativeLength               = LengthError("negative length")
	NonCanonicalVarint           = LengthError("non-canonical varint")
	NotAssetBox                  = RecordError("not an asset box")
	NotAvailableDuringShutdown   = ProcessError("not available during shutdown")
	NotAvailableDuringStartup    = ProcessError("not available during startup")
	NotEnoughData                = LengthError("not enough data")
	NotInitialised               = NotFoundError("not initialised")
	NotPrivateKey                = InvalidError("not private key")
	NotPublicKey                 = InvalidError("not public key")
	NotSellOrderBox              = RecordError("not a sell order box")
	PasswordTooShort             = LengthError("password too short")
	ProofCountMismatch           = InvalidError("proof count mismatch")
	ProofInvalid                 = InvalidError("proof invalid")
	RateLimiting                 = InvalidError("rate limiting")
	ReferencedBoxMismatch        = InvalidError("referenced box mismatch")
	ReferencedBoxNotFound        = NotFoundError("referenced box not found")
	SecretNotOwned               = NotFoundError("secret not owned")
	SectionOverrun               = LengthError("section overrun")
	SemanticallyInvalid          = InvalidError("semantically invalid")
	TrailingData                 = LengthError("trailing data")
	TransactionAlreadyExists     = ExistsError("transaction already exists")
	TransactionInProgress        = ProcessError("transaction in progress")
	TransactionNotFound          = NotFoundError("transaction not found")
	UnknownTransactionType       = RecordError("unknown transaction type")
	UnsupportedProposition       = InvalidError("unsupported proposition")
	ValueImbalance               = InvalidError("value imbalance")
	ValueOverflow                = InvalidError("value overflow")
	WalletIsLocked               = ProcessError("wallet is locked")
	WrongNetworkForAccount       = InvalidError("wrong network for account")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }

// IsErrMalformed - any failure while decoding a byte encoding
//
// decoding only produces length errors (short or overrun sections) and
// record errors (bad tags, flags or sub-records)
func IsErrMalformed(e error) bool {
	return IsErrLength(e) || IsErrRecord(e)
}
