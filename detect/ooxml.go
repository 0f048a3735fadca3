package detect

// ooxmlEncrypted always reports false. A CFB-wrapped OOXML package
// (the container MS Office uses for an encrypted .docx/.xlsx/.pptx)
// signals encryption through the EncryptionInfo stream's internal
// version and key-derivation fields, which this package does not
// parse; detecting those would need a CryptoAPI/Agile encryption
// schema reader, which is out of scope here.
func ooxmlEncrypted(_ StreamSource) bool {
	return false
}
