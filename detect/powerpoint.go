package detect

// powerPointEncrypted always reports false. PowerPoint's binary format
// signals encryption via a CryptSession9Container record reached by
// walking the UserEditAtom chain backward from the end of the
// PowerPoint Document stream, a substantially different record model
// than Word's FIB or Excel's BIFF stream and not implemented here.
func powerPointEncrypted(_ StreamSource) bool {
	return false
}
